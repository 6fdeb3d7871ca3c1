package v1

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/voicebot/internal/domain"
	"github.com/kurochkinivan/voicebot/internal/repository/postgresql"
)

const exportBatchSize = 100

type TranscriptionsHandler struct {
	log        *slog.Logger
	repository TranscriptionsRepository
	renderer   ReportRenderer
}

func NewTranscriptionsHandler(log *slog.Logger, repository TranscriptionsRepository, renderer ReportRenderer) *TranscriptionsHandler {
	return &TranscriptionsHandler{
		log:        log,
		repository: repository,
		renderer:   renderer,
	}
}

type GetTranscriptionsResponse struct {
	Transcriptions []*domain.Transcription `json:"transcriptions"`
	Pagination     Pagination              `json:"pagination"`
}

type exportRow struct {
	ID            string    `csv:"id"`
	CreatedAt     time.Time `csv:"created_at"`
	Filename      string    `csv:"filename"`
	Source        string    `csv:"source"`
	SizeBytes     int64     `csv:"size_bytes"`
	Text          string    `csv:"text"`
	Keywords      string    `csv:"keywords"`
	ConversionSec float64   `csv:"conversion_sec"`
	ASRSec        float64   `csv:"asr_sec"`
	KeywordSec    float64   `csv:"keyword_sec"`
	TotalSec      float64   `csv:"total_sec"`
}

func (h *TranscriptionsHandler) GetTranscriptions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offset := (page - 1) * limit

	transcriptions, total, err := h.repository.Transcriptions(r.Context(), limit, offset)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list transcriptions", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	writeJSON(w, http.StatusOK, GetTranscriptionsResponse{
		Transcriptions: transcriptions,
		Pagination:     newPagination(page, limit, total),
	})
}

func (h *TranscriptionsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var rows []exportRow

	for offset := uint64(0); ; offset += exportBatchSize {
		batch, total, err := h.repository.Transcriptions(r.Context(), exportBatchSize, offset)
		if err != nil {
			h.log.ErrorContext(r.Context(), "failed to export transcriptions", slog.String("err", err.Error()))
			writeError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		for _, t := range batch {
			rows = append(rows, toExportRow(t))
		}

		if len(batch) == 0 || offset+exportBatchSize >= uint64(total) {
			break
		}
	}

	if rows == nil {
		rows = []exportRow{}
	}

	data, err := csvutil.Marshal(rows)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transcriptions.csv"`)
	w.Write(data)
}

func (h *TranscriptionsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	t, err := h.repository.TranscriptionByID(r.Context(), id)
	if errors.Is(err, postgresql.ErrNotFound) {
		writeError(w, http.StatusNotFound, "transcription not found")
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to get transcription", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	data, err := h.renderer.Render(t)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to render report", slog.String("err", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s.pdf"`, t.ID))
	w.Write(data)
}

func toExportRow(t *domain.Transcription) exportRow {
	return exportRow{
		ID:            t.ID.String(),
		CreatedAt:     t.CreatedAt,
		Filename:      t.Filename,
		Source:        string(t.Source),
		SizeBytes:     t.SizeBytes,
		Text:          t.Text,
		Keywords:      strings.Join(t.Keywords, " "),
		ConversionSec: t.Timings.ConversionSec,
		ASRSec:        t.Timings.ASRSec,
		KeywordSec:    t.Timings.KeywordSec,
		TotalSec:      t.Timings.TotalSec,
	}
}

func parsePagination(r *http.Request) (page uint64, limit uint64, err error) {
	page, limit = 1, 10

	if p := r.URL.Query().Get("page"); p != "" {
		page, err = strconv.ParseUint(p, 10, 64)
		if err != nil || page == 0 {
			return 0, 0, errors.New("invalid page")
		}
	}

	if l := r.URL.Query().Get("limit"); l != "" {
		limit, err = strconv.ParseUint(l, 10, 64)
		if err != nil || limit < 1 || limit > 100 {
			return 0, 0, errors.New("invalid limit, must be in [1;100]")
		}
	}

	return page, limit, nil
}
