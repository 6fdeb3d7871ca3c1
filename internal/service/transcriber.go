package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/kurochkinivan/voicebot/internal/domain"
)

var allowedExtensions = map[string]string{
	".wav": "audio/wav",
	".mp3": "audio/mpeg",
}

type Health struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Device string `json:"device"`
}

// Transcriber turns an uploaded audio file into text and the keywords found in it.
type Transcriber struct {
	log        *slog.Logger
	maxSize    int64
	converter  Converter
	recognizer Recognizer
	keywords   KeywordDetector
	saver      TranscriptionSaver
	archive    Archive
	now        func() time.Time
}

// NewTranscriber builds the service. saver and archive may be nil.
func NewTranscriber(
	log *slog.Logger,
	maxSizeMB int64,
	converter Converter,
	recognizer Recognizer,
	keywords KeywordDetector,
	saver TranscriptionSaver,
	archive Archive,
) *Transcriber {
	return &Transcriber{
		log:        log,
		maxSize:    maxSizeMB * 1024 * 1024,
		converter:  converter,
		recognizer: recognizer,
		keywords:   keywords,
		saver:      saver,
		archive:    archive,
		now:        time.Now,
	}
}

func (t *Transcriber) Health() Health {
	return Health{
		Status: "ok",
		Model:  t.recognizer.Model(),
		Device: t.recognizer.Device(),
	}
}

func (t *Transcriber) Keywords() []string {
	return t.keywords.List()
}

// Validate checks the upload metadata before the body is read.
func (t *Transcriber) Validate(filename string, size int64) error {
	if filename == "" {
		return ErrEmptyFilename
	}

	if _, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]; !ok {
		return fmt.Errorf("%w %q", ErrUnsupportedExtension, filepath.Ext(filename))
	}

	if size > t.maxSize {
		return fmt.Errorf("%w: %s exceeds %s",
			ErrFileTooLarge, humanize.IBytes(uint64(size)), humanize.IBytes(uint64(t.maxSize)))
	}

	return nil
}

func (t *Transcriber) Transcribe(
	ctx context.Context,
	source domain.Source,
	filename string,
	body []byte,
) (*domain.Transcription, error) {
	if err := t.Validate(filename, int64(len(body))); err != nil {
		return nil, err
	}
	filename = filepath.Base(filename)

	start := time.Now()

	tmpDir, err := os.MkdirTemp("", "voicebot-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	rawPath := filepath.Join(tmpDir, "upload"+strings.ToLower(filepath.Ext(filename)))
	if err := os.WriteFile(rawPath, body, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write upload: %w", err)
	}

	convStart := time.Now()
	wavPath := filepath.Join(tmpDir, "audio.wav")
	if err := t.converter.ToWAV(ctx, rawPath, wavPath); err != nil {
		return nil, fmt.Errorf("failed to convert audio: %w", err)
	}
	convTime := time.Since(convStart)

	asrStart := time.Now()
	text, err := t.recognizer.Transcribe(ctx, wavPath)
	if err != nil {
		return nil, fmt.Errorf("failed to recognize speech: %w", err)
	}
	asrTime := time.Since(asrStart)

	kwStart := time.Now()
	detected := t.keywords.Detect(text)
	kwTime := time.Since(kwStart)

	result := &domain.Transcription{
		ID:        uuid.New(),
		Filename:  filename,
		Source:    source,
		Text:      text,
		Keywords:  detected,
		SizeBytes: int64(len(body)),
		CreatedAt: t.now().UTC(),
		Timings: domain.Timings{
			ConversionSec: domain.Seconds(convTime),
			ASRSec:        domain.Seconds(asrTime),
			KeywordSec:    domain.Seconds(kwTime),
			TotalSec:      domain.Seconds(time.Since(start)),
		},
	}

	t.log.InfoContext(ctx, "transcribed audio",
		slog.String("filename", filename),
		slog.String("size", humanize.IBytes(uint64(len(body)))),
		slog.Int("keywords", len(detected)),
		slog.Float64("total_sec", result.Timings.TotalSec),
	)

	return result, nil
}

// TranscribeAndStore runs Transcribe, archives the raw upload and records the result.
// Archive and storage failures are logged and do not fail the request.
func (t *Transcriber) TranscribeAndStore(ctx context.Context, filename string, body []byte) (*domain.Transcription, error) {
	result, err := t.Transcribe(ctx, domain.SourceUpload, filename, body)
	if err != nil {
		return nil, err
	}

	if t.archive != nil {
		contentType := allowedExtensions[strings.ToLower(filepath.Ext(result.Filename))]

		key, err := t.archive.Store(ctx, result.ID.String(), result.Filename, contentType, body)
		if err != nil {
			t.log.ErrorContext(ctx, "failed to archive upload", slog.String("err", err.Error()))
		} else {
			result.ArchiveKey = key
		}
	}

	if t.saver != nil {
		if err := t.saver.SaveTranscription(ctx, result); err != nil {
			t.log.ErrorContext(ctx, "failed to save transcription",
				slog.String("id", result.ID.String()),
				slog.String("err", err.Error()),
			)
		}
	}

	return result, nil
}

// IsClientError reports whether err was caused by the upload itself.
func IsClientError(err error) bool {
	return errors.Is(err, ErrEmptyFilename) ||
		errors.Is(err, ErrUnsupportedExtension) ||
		errors.Is(err, ErrFileTooLarge)
}
