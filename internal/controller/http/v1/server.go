package v1

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kurochkinivan/voicebot/internal/config"
	"github.com/rs/cors"
)

type Server struct {
	httpServer *http.Server
}

type Dependencies struct {
	Service        TranscriptionService
	Transcriptions TranscriptionsRepository
	Reports        ReportRenderer
	Metrics        *Metrics
	MaxUploadBytes int64
}

func NewServer(log *slog.Logger, cfg config.HTTP, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(log, deps),
		},
	}
}

func NewRouter(log *slog.Logger, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"*"},
	}).Handler)

	th := NewTranscribeHandler(log, deps.Service, deps.MaxUploadBytes, deps.Metrics)
	r.Get("/health", th.Health)
	r.Get("/keywords", th.Keywords)
	r.Post("/transcribe", th.Transcribe)

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler())
	}

	if deps.Transcriptions != nil {
		h := NewTranscriptionsHandler(log, deps.Transcriptions, deps.Reports)
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/transcriptions", h.GetTranscriptions)
			r.Get("/transcriptions/export", h.ExportCSV)
			r.Get("/transcriptions/{id}/report", h.GetReport)
		})
	}

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
