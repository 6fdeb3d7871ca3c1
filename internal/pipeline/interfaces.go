package pipeline

import (
	"context"

	"github.com/kurochkinivan/voicebot/internal/domain"
)

type FilesProvider interface {
	Files(ctx context.Context) ([]*domain.File, error)
}

type FileUpdater interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.File) error
}

type TranscriptionSaver interface {
	SaveTranscription(ctx context.Context, t *domain.Transcription) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type AudioTranscriber interface {
	Transcribe(ctx context.Context, source domain.Source, filename string, body []byte) (*domain.Transcription, error)
}

type ReportGenerator interface {
	GenerateReport(outputPath string, t *domain.Transcription) error
}
