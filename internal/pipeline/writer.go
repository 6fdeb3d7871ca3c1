package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/voicebot/internal/domain"
)

// Writer persists transcription results and records the final status of each inbox file.
// Successful results are forwarded to the reporter.
type Writer struct {
	log                *slog.Logger
	results            <-chan *domain.TranscribeResult
	reports            chan<- *domain.Transcription
	fileUpdater        FileUpdater
	transcriptionSaver TranscriptionSaver
	transactor         Transactor
}

func NewWriter(
	log *slog.Logger,
	results <-chan *domain.TranscribeResult,
	reports chan<- *domain.Transcription,
	fileUpdater FileUpdater,
	transcriptionSaver TranscriptionSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:                log,
		results:            results,
		reports:            reports,
		fileUpdater:        fileUpdater,
		transcriptionSaver: transcriptionSaver,
		transactor:         transactor,
	}
}

func (w *Writer) Run(ctx context.Context) error {
	defer close(w.reports)

	for {
		select {
		case result, ok := <-w.results:
			if !ok {
				return nil
			}

			log := w.log.With(slog.String("filename", result.Filename))

			log.InfoContext(ctx, "received transcription result")

			if err := w.processResult(ctx, log, result); err != nil {
				log.ErrorContext(ctx, "failed to process transcription result", slog.String("err", err.Error()))
				continue
			}

			if result.Error != nil {
				continue
			}

			select {
			case w.reports <- result.Transcription:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Writer) processResult(ctx context.Context, log *slog.Logger, result *domain.TranscribeResult) error {
	if result.Error == nil {
		log.DebugContext(ctx, "saving transcription to database")

		if err := w.saveResult(ctx, result); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}

		log.DebugContext(ctx, "transcription saved successfully")

		return nil
	}

	log.DebugContext(ctx, "recording failed transcription")

	now := time.Now()
	err := w.fileUpdater.UpdateOrCreateFile(ctx, &domain.File{
		Name:         filepath.Base(result.Filename),
		Status:       domain.StatusError,
		ErrorMessage: result.Error.Error(),
		ProcessedAt:  &now,
	})
	if err != nil {
		return fmt.Errorf("failed to save error status: %w", err)
	}

	return nil
}

func (w *Writer) saveResult(ctx context.Context, result *domain.TranscribeResult) error {
	return w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		if err := w.transcriptionSaver.SaveTranscription(ctx, result.Transcription); err != nil {
			return fmt.Errorf("failed to save transcription: %w", err)
		}

		now := time.Now()
		err := w.fileUpdater.UpdateOrCreateFile(ctx, &domain.File{
			Name:        filepath.Base(result.Filename),
			Status:      domain.StatusDone,
			ProcessedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("failed to update file status: %w", err)
		}

		return nil
	})
}
