package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kurochkinivan/voicebot/internal/logger"
)

type loggerKey struct{}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	log := logger.New(os.Stdout, logger.ParseLevel(os.Getenv("LOG_LEVEL")))

	ctx = context.WithValue(ctx, loggerKey{}, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "stopped app due to the error %q\n", err)
		os.Exit(1)
	}
}
