package service

import (
	"context"

	"github.com/kurochkinivan/voicebot/internal/domain"
)

type Converter interface {
	ToWAV(ctx context.Context, src, dst string) error
}

type Recognizer interface {
	Transcribe(ctx context.Context, wavPath string) (string, error)
	Model() string
	Device() string
}

type KeywordDetector interface {
	Detect(text string) []string
	List() []string
}

type TranscriptionSaver interface {
	SaveTranscription(ctx context.Context, t *domain.Transcription) error
}

type Archive interface {
	Store(ctx context.Context, id, filename, contentType string, body []byte) (string, error)
}
