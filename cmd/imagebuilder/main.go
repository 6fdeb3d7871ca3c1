package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kurochkinivan/voicebot/internal/imagebuild"
	"github.com/kurochkinivan/voicebot/internal/logger"
)

const (
	exitCodeOK = iota
	exitCodeFailed
	exitCodeInputErr
)

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Stderr, logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	exitCode := exitCodeOK
	if err := cmd(log, os.Stdout).Run(ctx, os.Args); err != nil {
		log.ErrorContext(ctx, "imagebuilder failed", slog.String("err", err.Error()))

		exitCode = exitCodeFailed
		if errors.Is(err, imagebuild.ErrMissingInput) ||
			errors.Is(err, imagebuild.ErrInvalidSpec) ||
			errors.Is(err, imagebuild.ErrUnknownLayout) ||
			errors.Is(err, imagebuild.ErrNoOutput) {
			exitCode = exitCodeInputErr
		}
	}

	stop()
	os.Exit(exitCode)
}
