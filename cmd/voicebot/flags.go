package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/voicebot/internal/app"
	"github.com/kurochkinivan/voicebot/internal/config"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "voicebot",
		Usage:   "German speech-to-text API with keyword detection",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
			if !ok {
				return errors.New("failed to get logger from context")
			}

			cfg := config.Load(cmd)

			return app.New(log, cfg).Run(ctx)
		},
	}
}

// sources reads a flag from the first set env var, then from the YAML config at key.
func sources(config *string, key string, env ...string) cli.ValueSourceChain {
	chain := make([]cli.ValueSource, 0, len(env)+1)
	for _, e := range env {
		chain = append(chain, cli.EnvVar(e))
	}

	return cli.NewValueSourceChain(append(chain, yaml.YAML(key, altsrc.NewStringPtrSourcer(config)))...)
}

func flags() []cli.Flag {
	var config string

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &config,
		},
		&cli.StringFlag{
			Name:      "watch-dir",
			Aliases:   []string{"w"},
			Usage:     "Set inbox directory to transcribe audio files from, empty disables the inbox",
			Sources:   sources(&config, "app.watch_dir", "WATCH_DIR"),
			Validator: validateDirectory,
		},
		&cli.StringFlag{
			Name:    "reports-dir",
			Aliases: []string{"r"},
			Usage:   "Set directory to write PDF reports of inbox files to, created if missing",
			Value:   "reports",
			Sources: sources(&config, "app.reports_dir", "REPORTS_DIR"),
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set inbox scan interval",
			Sources: sources(&config, "app.scan_interval"),
		},
		&cli.StringFlag{
			Name:    "keywords-path",
			Usage:   "Load keywords from JSON `FILE`",
			Value:   "keywords.json",
			Sources: sources(&config, "transcription.keywords_path", "KEYWORDS_PATH"),
		},
		&cli.Int64Flag{
			Name:      "max-file-size-mb",
			Usage:     "Reject uploads larger than this many MiB",
			Value:     25,
			Sources:   sources(&config, "transcription.max_file_size_mb", "MAX_FILE_SIZE_MB"),
			Validator: validatePositive,
		},
		&cli.StringFlag{
			Name:    "ffmpeg",
			Usage:   "Set ffmpeg binary",
			Value:   "ffmpeg",
			Sources: sources(&config, "transcription.ffmpeg", "FFMPEG_BINARY"),
		},
		&cli.StringFlag{
			Name:    "asr-endpoint",
			Usage:   "Set base URL of the Whisper-compatible inference server",
			Value:   "http://localhost:8080/v1",
			Sources: sources(&config, "asr.endpoint", "ASR_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:    "asr-api-key",
			Usage:   "Set API key of the inference server",
			Sources: sources(&config, "asr.api_key", "ASR_API_KEY"),
		},
		&cli.StringFlag{
			Name:    "asr-model",
			Usage:   "Set ASR model",
			Value:   "bofenghuang/whisper-medium-cv11-german",
			Sources: sources(&config, "asr.model", "ASR_MODEL"),
		},
		&cli.StringFlag{
			Name:    "asr-language",
			Usage:   "Set spoken language",
			Value:   "de",
			Sources: sources(&config, "asr.language", "ASR_LANGUAGE"),
		},
		&cli.DurationFlag{
			Name:    "asr-timeout",
			Usage:   "Set timeout of a single recognition request",
			Value:   2 * time.Minute,
			Sources: sources(&config, "asr.timeout", "ASR_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: sources(&config, "postgresql.host", "PG_HOST"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: sources(&config, "postgresql.port", "PG_PORT"),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username, empty runs without a database",
			Sources: sources(&config, "postgresql.username", "PG_USERNAME"),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: sources(&config, "postgresql.password", "PG_PASSWORD"),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "voicebot",
			Sources: sources(&config, "postgresql.dbname", "PG_DBNAME"),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "Set S3 endpoint, e.g. a MinIO URL",
			Sources: sources(&config, "s3.endpoint", "S3_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:    "s3-region",
			Usage:   "Set S3 region",
			Value:   "us-east-1",
			Sources: sources(&config, "s3.region", "S3_REGION"),
		},
		&cli.StringFlag{
			Name:    "s3-access-key-id",
			Usage:   "Set S3 access key id",
			Sources: sources(&config, "s3.access_key_id", "S3_ACCESS_KEY_ID"),
		},
		&cli.StringFlag{
			Name:    "s3-secret-access-key",
			Usage:   "Set S3 secret access key",
			Sources: sources(&config, "s3.secret_access_key", "S3_SECRET_ACCESS_KEY"),
		},
		&cli.StringFlag{
			Name:    "s3-bucket",
			Usage:   "Archive uploads to this bucket, empty disables the archive",
			Sources: sources(&config, "s3.bucket", "S3_BUCKET"),
		},
		&cli.StringFlag{
			Name:    "s3-prefix",
			Usage:   "Set key prefix of archived uploads",
			Value:   "uploads",
			Sources: sources(&config, "s3.prefix", "S3_PREFIX"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "0.0.0.0",
			Sources: sources(&config, "http.host", "HTTP_HOST"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8000",
			Sources: sources(&config, "http.port", "HTTP_PORT"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: sources(&config, "http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   1 * time.Minute,
			Sources: sources(&config, "http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   5 * time.Minute,
			Sources: sources(&config, "http.write_timeout"),
		},
	}
}

func validateDirectory(dir string) error {
	if dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validatePositive(v int64) error {
	if v <= 0 {
		return fmt.Errorf("must be positive, got %d", v)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
