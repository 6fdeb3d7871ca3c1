package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/voicebot/internal/asr"
	"github.com/kurochkinivan/voicebot/internal/audio"
	"github.com/kurochkinivan/voicebot/internal/config"
	v1 "github.com/kurochkinivan/voicebot/internal/controller/http/v1"
	"github.com/kurochkinivan/voicebot/internal/domain"
	"github.com/kurochkinivan/voicebot/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/voicebot/internal/keywords"
	"github.com/kurochkinivan/voicebot/internal/pipeline"
	"github.com/kurochkinivan/voicebot/internal/repository/postgresql"
	s3repo "github.com/kurochkinivan/voicebot/internal/repository/s3"
	"github.com/kurochkinivan/voicebot/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer   = 100
	resultsBuffer = 50
	reportsBuffer = 100

	shutdownTimeout = 5 * time.Second
)

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting voicebot",
		slog.String("asr_model", a.cfg.ASR.Model),
		slog.String("asr_endpoint", a.cfg.ASR.Endpoint),
		slog.Int64("max_file_size_mb", a.cfg.MaxFileSizeMB),
	)

	kw, err := keywords.Load(a.cfg.KeywordsPath)
	if err != nil {
		a.log.WarnContext(ctx, "keywords not loaded, continuing without keywords", slog.String("err", err.Error()))
		kw = keywords.New()
	} else {
		a.log.InfoContext(ctx, "keywords loaded", slog.Int("count", kw.Len()))
	}

	recognizer := newRecognizer(a.log, a.cfg.ASR)
	if err := recognizer.Warmup(ctx); err != nil {
		a.log.ErrorContext(ctx, "ASR model not available, transcriptions will fail", slog.String("err", err.Error()))
	}

	var archive service.Archive
	if a.cfg.S3.Bucket != "" {
		audioArchive, err := a.newArchive(ctx)
		if err != nil {
			return err
		}
		archive = audioArchive
	}

	deps := v1.Dependencies{
		Metrics:        newMetrics(),
		MaxUploadBytes: a.cfg.MaxFileSizeMB << 20,
	}

	converter := audio.NewConverter(a.cfg.FFmpegBinary)

	if a.cfg.PostgreSQL.Username == "" {
		a.log.WarnContext(ctx, "no database configured, history and inbox pipeline are disabled")

		deps.Service = service.NewTranscriber(a.log, a.cfg.MaxFileSizeMB, converter, recognizer, kw, nil, archive)

		return a.serve(ctx, deps, nil)
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	transcriptionsRepository := postgresql.NewTranscriptionsRepository(pool)
	transcriber := service.NewTranscriber(a.log, a.cfg.MaxFileSizeMB, converter, recognizer, kw, transcriptionsRepository, archive)
	reports := report_generator.New()

	deps.Service = transcriber
	deps.Transcriptions = transcriptionsRepository
	deps.Reports = reports

	if a.cfg.WatchDirectory == "" {
		return a.serve(ctx, deps, nil)
	}

	return a.serve(ctx, deps, func(ctx context.Context, erg *errgroup.Group) error {
		return a.startPipeline(ctx, erg, pool, transcriber, reports)
	})
}

func (a *App) newArchive(ctx context.Context) (*s3repo.AudioArchive, error) {
	client, err := s3repo.NewClient(ctx, a.cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 client: %w", err)
	}

	archive := s3repo.NewAudioArchive(a.log, client, a.cfg.S3.Bucket, a.cfg.S3.Prefix)
	if err := archive.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to prepare audio archive: %w", err)
	}

	a.log.InfoContext(ctx, "audio archive enabled", slog.String("bucket", a.cfg.S3.Bucket))

	return archive, nil
}

func (a *App) startPipeline(
	ctx context.Context,
	erg *errgroup.Group,
	pool *pgxpool.Pool,
	transcriber *service.Transcriber,
	reportGenerator *report_generator.ReportGenerator,
) error {
	filesRepository := postgresql.NewFilesRepository(pool)
	transcriptionsRepository := postgresql.NewTranscriptionsRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	if err := os.MkdirAll(a.cfg.ReportsDirectory, 0o755); err != nil {
		return fmt.Errorf("failed to create reports directory: %w", err)
	}

	if err := filesRepository.ResetProcessingFiles(ctx); err != nil {
		return fmt.Errorf("failed to reset processing files: %w", err)
	}

	a.log.InfoContext(ctx, "starting inbox pipeline",
		slog.String("watch_dir", a.cfg.WatchDirectory),
		slog.String("reports_dir", a.cfg.ReportsDirectory),
		slog.Duration("scan_interval", a.cfg.DirectoryScanInterval),
	)

	files := make(chan string, filesBuffer)
	results := make(chan *domain.TranscribeResult, resultsBuffer)
	reports := make(chan *domain.Transcription, reportsBuffer)

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.WatchDirectory,
		a.cfg.DirectoryScanInterval,
		files,
		filesRepository,
		filesRepository,
	)
	stage := pipeline.NewTranscriber(a.log, files, results, transcriber)
	writer := pipeline.NewWriter(a.log, results, reports, filesRepository, transcriptionsRepository, txManager)
	reporter := pipeline.NewReporter(a.log, a.cfg.ReportsDirectory, reports, reportGenerator)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "transcriber started")
		return stage.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	return nil
}

// serve runs the HTTP server and, when given, the extra components started by
// start. Everything stops once ctx is cancelled or any component fails.
func (a *App) serve(ctx context.Context, deps v1.Dependencies, start func(context.Context, *errgroup.Group) error) error {
	server := v1.NewServer(a.log, a.cfg.HTTP, deps)

	erg, ctx := errgroup.WithContext(ctx)

	if start != nil {
		if err := start(ctx, erg); err != nil {
			return err
		}
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "voicebot stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "voicebot stopped gracefully")

	return nil
}

func newMetrics() *v1.Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return v1.NewMetrics(reg)
}

func newRecognizer(log *slog.Logger, cfg config.ASR) *asr.Client {
	return asr.New(log, asr.Config(cfg))
}
