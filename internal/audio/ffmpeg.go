package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

const (
	defaultBinary     = "ffmpeg"
	defaultSampleRate = 16000
	stderrTail        = 512
)

var ErrConversionFailed = errors.New("audio conversion failed")

// Converter normalizes uploaded audio to mono PCM WAV using the ffmpeg binary.
type Converter struct {
	binary     string
	sampleRate int
}

func NewConverter(binary string) *Converter {
	if binary == "" {
		binary = defaultBinary
	}

	return &Converter{
		binary:     binary,
		sampleRate: defaultSampleRate,
	}
}

func (c *Converter) ToWAV(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, c.binary, c.args(src, dst)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		return fmt.Errorf("%w: %w: %s", ErrConversionFailed, err, tail(stderr.String()))
	}

	return nil
}

func (c *Converter) args(src, dst string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", src,
		"-ar", strconv.Itoa(c.sampleRate),
		"-ac", "1",
		"-f", "wav",
		dst,
	}
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > stderrTail {
		return "..." + s[len(s)-stderrTail:]
	}

	return s
}
