package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	"github.com/kurochkinivan/voicebot/internal/config"
	"github.com/kurochkinivan/voicebot/internal/logger"
	"github.com/kurochkinivan/voicebot/internal/repository/postgresql"
	"github.com/urfave/cli/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const (
	migrationTypeUp   = "up"
	migrationTypeDown = "down"
)

const (
	exitCodeOK = iota
	exitCodeInputErr
	exitCodeInternalErr
)

var errInput = errors.New("invalid input")

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Stdout, slog.LevelDebug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	exitCode := exitCodeOK
	if err := cmd(log).Run(ctx, os.Args); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", slog.String("err", err.Error()))

		exitCode = exitCodeInternalErr
		if errors.Is(err, errInput) {
			exitCode = exitCodeInputErr
		}
	}

	stop()
	os.Exit(exitCode)
}

func cmd(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrator",
		Usage: "apply voicebot database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Value: migrationTypeUp, Usage: "migration type: up/down"},
			&cli.StringFlag{Name: "host", Value: "127.0.0.1", Usage: "database host", Sources: cli.EnvVars("PG_HOST")},
			&cli.StringFlag{Name: "port", Value: "5432", Usage: "database port", Sources: cli.EnvVars("PG_PORT")},
			&cli.StringFlag{Name: "username", Usage: "database username", Sources: cli.EnvVars("PG_USERNAME")},
			&cli.StringFlag{Name: "password", Usage: "database password", Sources: cli.EnvVars("PG_PASSWORD")},
			&cli.StringFlag{Name: "db", Value: "voicebot", Usage: "database name", Sources: cli.EnvVars("PG_DBNAME")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := config.PostgreSQL{
				Host:     cmd.String("host"),
				Port:     cmd.String("port"),
				Username: cmd.String("username"),
				Password: cmd.String("password"),
				DBName:   cmd.String("db"),
			}

			if err := validate(cmd.String("type"), cfg); err != nil {
				return fmt.Errorf("%w: %w", errInput, err)
			}

			return run(ctx, log, cmd.String("type"), postgresql.ConnectionURL(cfg))
		},
	}
}

func run(ctx context.Context, log *slog.Logger, migrationType, databaseURL string) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migrations source: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		err = errors.Join(err, srcErr, dbErr)
	}()

	if err := applyMigration(migrator, migrationType); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.InfoContext(ctx, "no migrations to apply")
			return nil
		}

		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.InfoContext(ctx, "migrations applied successfully", slog.String("type", migrationType))

	return nil
}

func applyMigration(migrator *migrate.Migrate, migrationType string) error {
	switch migrationType {
	case migrationTypeUp:
		return migrator.Up()
	case migrationTypeDown:
		return migrator.Down()
	default:
		return fmt.Errorf("unknown migration type %q", migrationType)
	}
}

func validate(migrationType string, cfg config.PostgreSQL) error {
	if migrationType != migrationTypeUp && migrationType != migrationTypeDown {
		return fmt.Errorf("type must be %q or %q, got %q", migrationTypeUp, migrationTypeDown, migrationType)
	}

	for _, req := range []struct{ name, value string }{
		{"username", cfg.Username},
		{"password", cfg.Password},
		{"db", cfg.DBName},
		{"port", cfg.Port},
	} {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}

	return nil
}
