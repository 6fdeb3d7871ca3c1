package v1

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/kurochkinivan/voicebot/internal/asr"
	"github.com/kurochkinivan/voicebot/internal/domain"
	"github.com/kurochkinivan/voicebot/internal/service"
)

const (
	formField         = "file"
	multipartOverhead = 1 << 20
)

type TranscribeHandler struct {
	log      *slog.Logger
	service  TranscriptionService
	maxBytes int64
	metrics  *Metrics
}

func NewTranscribeHandler(log *slog.Logger, svc TranscriptionService, maxBytes int64, metrics *Metrics) *TranscribeHandler {
	return &TranscribeHandler{
		log:      log,
		service:  svc,
		maxBytes: maxBytes,
		metrics:  metrics,
	}
}

type TranscribeResponse struct {
	Text     string             `json:"text"`
	Keywords []string           `json:"keywords"`
	Timings  map[string]float64 `json:"timings"`
}

type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

func (h *TranscribeHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Health())
}

func (h *TranscribeHandler) Keywords(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, KeywordsResponse{Keywords: h.service.Keywords()})
}

func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status, result := h.transcribe(w, r)
	h.metrics.observeRequest(status, time.Since(start), result)
}

func (h *TranscribeHandler) transcribe(w http.ResponseWriter, r *http.Request) (int, *domain.Transcription) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)

	file, header, err := r.FormFile(formField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return h.fail(w, http.StatusRequestEntityTooLarge, "File too large")
		}

		return h.fail(w, http.StatusBadRequest, "No file provided")
	}
	defer file.Close()

	if err := h.service.Validate(header.Filename, header.Size); err != nil {
		return h.serviceError(w, r, err)
	}

	body, err := io.ReadAll(file)
	if err != nil {
		return h.fail(w, http.StatusBadRequest, "Failed to read upload")
	}

	result, err := h.service.TranscribeAndStore(r.Context(), header.Filename, body)
	if err != nil {
		return h.serviceError(w, r, err)
	}

	writeJSON(w, http.StatusOK, TranscribeResponse{
		Text:     result.Text,
		Keywords: result.Keywords,
		Timings: map[string]float64{
			"conversion_sec": result.Timings.ConversionSec,
			"asr_sec":        result.Timings.ASRSec,
			"keyword_sec":    result.Timings.KeywordSec,
			"total_sec":      result.Timings.TotalSec,
		},
	})

	return http.StatusOK, result
}

func (h *TranscribeHandler) serviceError(w http.ResponseWriter, r *http.Request, err error) (int, *domain.Transcription) {
	switch {
	case errors.Is(err, service.ErrEmptyFilename):
		return h.fail(w, http.StatusBadRequest, "Empty filename")
	case errors.Is(err, service.ErrUnsupportedExtension):
		return h.fail(w, http.StatusBadRequest, "Unsupported file extension")
	case errors.Is(err, service.ErrFileTooLarge):
		return h.fail(w, http.StatusRequestEntityTooLarge, "File too large")
	case errors.Is(err, asr.ErrModelUnavailable):
		h.log.ErrorContext(r.Context(), "transcription failed", slog.String("err", err.Error()))
		return h.fail(w, http.StatusInternalServerError, "Model initialization failed")
	default:
		h.log.ErrorContext(r.Context(), "transcription failed", slog.String("err", err.Error()))
		return h.fail(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func (h *TranscribeHandler) fail(w http.ResponseWriter, status int, detail string) (int, *domain.Transcription) {
	writeError(w, status, detail)
	return status, nil
}
