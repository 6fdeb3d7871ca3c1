package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/voicebot/internal/domain"
)

// Transcriber reads queued inbox files and turns them into transcription results.
type Transcriber struct {
	log         *slog.Logger
	files       <-chan string
	results     chan<- *domain.TranscribeResult
	transcriber AudioTranscriber
}

func NewTranscriber(
	log *slog.Logger,
	files <-chan string,
	results chan<- *domain.TranscribeResult,
	transcriber AudioTranscriber,
) *Transcriber {
	return &Transcriber{
		log:         log,
		files:       files,
		results:     results,
		transcriber: transcriber,
	}
}

func (t *Transcriber) Run(ctx context.Context) error {
	defer close(t.results)

	for {
		select {
		case path, ok := <-t.files:
			if !ok {
				return nil
			}

			t.log.DebugContext(ctx, "received file to transcribe", slog.String("filename", path))

			transcription, err := t.transcribeFile(ctx, path)
			if err != nil {
				t.log.ErrorContext(ctx, "failed to transcribe file",
					slog.String("filename", path),
					slog.String("err", err.Error()),
				)
			}

			select {
			case t.results <- &domain.TranscribeResult{
				Filename:      path,
				Transcription: transcription,
				Error:         err,
			}:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (t *Transcriber) transcribeFile(ctx context.Context, path string) (*domain.Transcription, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return t.transcriber.Transcribe(ctx, domain.SourceInbox, filepath.Base(path), body)
}
