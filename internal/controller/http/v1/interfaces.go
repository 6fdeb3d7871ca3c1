package v1

import (
	"context"

	"github.com/google/uuid"
	"github.com/kurochkinivan/voicebot/internal/domain"
	"github.com/kurochkinivan/voicebot/internal/service"
)

type TranscriptionService interface {
	Health() service.Health
	Keywords() []string
	Validate(filename string, size int64) error
	TranscribeAndStore(ctx context.Context, filename string, body []byte) (*domain.Transcription, error)
}

type TranscriptionsRepository interface {
	Transcriptions(ctx context.Context, limit, offset uint64) ([]*domain.Transcription, int, error)
	TranscriptionByID(ctx context.Context, id uuid.UUID) (*domain.Transcription, error)
}

type ReportRenderer interface {
	Render(t *domain.Transcription) ([]byte, error)
}
