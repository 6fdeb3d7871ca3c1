package dashboard

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

const maxUploadBytes = 64 << 20

var allowedExtensions = []string{".mp3", ".wav"}

type Backend interface {
	BaseURL() string
	Health(ctx context.Context) (*Health, error)
	Transcribe(ctx context.Context, filename, contentType string, audio io.Reader) (*Transcription, error)
}

type Handler struct {
	log     *slog.Logger
	backend Backend
}

func NewHandler(log *slog.Logger, backend Backend) *Handler {
	return &Handler{
		log:     log,
		backend: backend,
	}
}

type page struct {
	BackendURL string
	Health     *Health
	Filename   string
	Size       string
	Result     *Transcription
	Error      string
	Accept     string
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.Index)
	r.Post("/", h.Upload)

	return r
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	p, _ := h.newPage(r.Context())
	h.render(w, r, http.StatusOK, p)
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	p, ok := h.newPage(r.Context())
	if !ok {
		h.render(w, r, http.StatusOK, p)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		p.Error = "Please choose an audio file."
		h.render(w, r, http.StatusBadRequest, p)
		return
	}
	defer file.Close()

	p.Filename = header.Filename
	p.Size = humanize.IBytes(uint64(header.Size))

	if !allowed(header.Filename) {
		p.Error = "Only mp3 and wav files are supported."
		h.render(w, r, http.StatusBadRequest, p)
		return
	}

	result, err := h.backend.Transcribe(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		var be *BackendError
		if errors.As(err, &be) {
			p.Error = "Request error: " + be.Detail
		} else {
			h.log.ErrorContext(r.Context(), "transcription request failed", slog.String("err", err.Error()))
			p.Error = "Request error: " + err.Error()
		}
		h.render(w, r, http.StatusOK, p)
		return
	}

	p.Result = result
	h.render(w, r, http.StatusOK, p)
}

// newPage reports false when the backend is unreachable.
func (h *Handler) newPage(ctx context.Context) (page, bool) {
	p := page{
		BackendURL: h.backend.BaseURL(),
		Accept:     strings.Join(allowedExtensions, ","),
	}

	health, err := h.backend.Health(ctx)
	if err != nil {
		h.log.WarnContext(ctx, "backend not reachable", slog.String("err", err.Error()))
		p.Error = "Backend not reachable at " + p.BackendURL + ". Start it or set BACKEND_URL."
		return p, false
	}

	p.Health = health

	return p, true
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := pageTmpl.Execute(w, p); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render page", slog.String("err", err.Error()))
	}
}

func allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowedExtensions {
		if ext == a {
			return true
		}
	}

	return false
}
