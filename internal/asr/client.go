package asr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultLanguage = "de"

var ErrModelUnavailable = errors.New("model initialization failed")

type Config struct {
	Endpoint string
	APIKey   string
	Model    string
	Language string
	Timeout  time.Duration
}

// Client talks to a Whisper-compatible inference server through the OpenAI audio API.
// The model is probed once, lazily; a failed probe is remembered and reported on every call.
type Client struct {
	log      *slog.Logger
	api      openai.Client
	cfg      Config
	once     sync.Once
	readyErr error
}

func New(log *slog.Logger, cfg Config) *Client {
	if cfg.Language == "" {
		cfg.Language = defaultLanguage
	}

	baseURL := cfg.Endpoint
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	opts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &Client{
		log: log,
		api: openai.NewClient(opts...),
		cfg: cfg,
	}
}

func (c *Client) Model() string {
	return c.cfg.Model
}

// Device describes where inference runs. The model is served remotely.
func (c *Client) Device() string {
	return c.cfg.Endpoint
}

// Warmup checks that the inference server answers and knows the model.
func (c *Client) Warmup(ctx context.Context) error {
	c.once.Do(func() {
		c.log.InfoContext(ctx, "loading ASR model",
			slog.String("model", c.cfg.Model),
			slog.String("endpoint", c.cfg.Endpoint),
		)

		if _, err := c.api.Models.Get(ctx, c.cfg.Model); err != nil {
			c.log.ErrorContext(ctx, "ASR model load failed", slog.String("err", err.Error()))
			c.readyErr = fmt.Errorf("%w: %w", ErrModelUnavailable, err)
			return
		}

		c.log.InfoContext(ctx, "ASR model ready")
	})

	return c.readyErr
}

func (c *Client) Transcribe(ctx context.Context, wavPath string) (_ string, err error) {
	if err := c.Warmup(ctx); err != nil {
		return "", err
	}

	f, err := os.Open(wavPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	resp, err := c.api.Audio.Transcriptions.New(ctx, openai.AudioTranscriptionNewParams{
		File:     f,
		Model:    openai.AudioModel(c.cfg.Model),
		Language: openai.String(c.cfg.Language),
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
