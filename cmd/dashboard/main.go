package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kurochkinivan/voicebot/internal/config"
	"github.com/kurochkinivan/voicebot/internal/dashboard"
	"github.com/kurochkinivan/voicebot/internal/logger"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Stdout, logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd(log).Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "stopped dashboard due to the error %q\n", err)
		os.Exit(1)
	}
}

func cmd(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "dashboard",
		Usage:   "web dashboard for the voicebot API",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "backend-url",
				Usage:   "Set voicebot API base URL",
				Value:   "http://localhost:8000",
				Sources: cli.EnvVars("BACKEND_URL"),
			},
			&cli.DurationFlag{
				Name:    "health-timeout",
				Usage:   "Set timeout of the backend health check",
				Value:   2 * time.Second,
				Sources: cli.EnvVars("HEALTH_TIMEOUT"),
			},
			&cli.DurationFlag{
				Name:    "request-timeout",
				Usage:   "Set timeout of a transcription request",
				Value:   30 * time.Second,
				Sources: cli.EnvVars("REQUEST_TIMEOUT"),
			},
			&cli.StringFlag{Name: "http-host", Value: "0.0.0.0", Usage: "Set HTTP server host", Sources: cli.EnvVars("HTTP_HOST")},
			&cli.StringFlag{Name: "http-port", Value: "8501", Usage: "Set HTTP server port", Sources: cli.EnvVars("HTTP_PORT")},
			&cli.DurationFlag{Name: "http-idle-timeout", Value: time.Minute, Usage: "Set HTTP server idle timeout"},
			&cli.DurationFlag{Name: "http-read-timeout", Value: time.Minute, Usage: "Set HTTP server read timeout"},
			&cli.DurationFlag{Name: "http-write-timeout", Value: time.Minute, Usage: "Set HTTP server write timeout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return run(ctx, log, config.LoadDashboard(cmd))
		},
	}
}

func run(ctx context.Context, log *slog.Logger, cfg *config.Dashboard) error {
	client := dashboard.NewClient(cfg.BackendURL, cfg.HealthTimeout, cfg.RequestTimeout)
	server := dashboard.NewServer(cfg.HTTP, dashboard.NewHandler(log, client))

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		log.InfoContext(ctx, "starting dashboard",
			slog.String("addr", net.JoinHostPort(cfg.Host, cfg.Port)),
			slog.String("backend_url", cfg.BackendURL),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return erg.Wait()
}
