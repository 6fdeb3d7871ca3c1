package imagebuild

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

type RunStatus string

const (
	RunSucceeded RunStatus = "succeeded"
	RunFailed    RunStatus = "failed"
)

const tableRuns = "build_runs"

// Run is one recorded build.
type Run struct {
	ID            int64         `json:"id"`
	Layout        Layout        `json:"layout"`
	ContextDigest string        `json:"context_digest"`
	Reference     string        `json:"reference"`
	Status        RunStatus     `json:"status"`
	Error         string        `json:"error,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
}

// History keeps build runs in a local SQLite file.
type History struct {
	db *sql.DB
	qb sq.StatementBuilderType
}

func OpenHistory(ctx context.Context, path string) (*History, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open build history: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+tableRuns+` (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			layout TEXT NOT NULL,
			context_digest TEXT NOT NULL,
			reference TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			error TEXT NOT NULL DEFAULT '',
			started_at_ms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create build history table: %w", err), db.Close())
	}

	return &History{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

func (h *History) Record(ctx context.Context, run Run) error {
	query, args, err := h.qb.
		Insert(tableRuns).
		Columns("layout", "context_digest", "reference", "status", "error", "started_at_ms", "duration_ms").
		Values(
			string(run.Layout),
			run.ContextDigest,
			run.Reference,
			string(run.Status),
			run.Error,
			run.StartedAt.UnixMilli(),
			run.Duration.Milliseconds(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := h.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record build: %w", err)
	}

	return nil
}

// Runs returns the most recent runs first. A zero limit returns all of them.
func (h *History) Runs(ctx context.Context, limit uint64) ([]Run, error) {
	b := h.qb.
		Select("id", "layout", "context_digest", "reference", "status", "error", "started_at_ms", "duration_ms").
		From(tableRuns).
		OrderBy("id DESC")
	if limit > 0 {
		b = b.Limit(limit)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query build history: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r                     Run
			startedAt, durationMs int64
		)
		if err := rows.Scan(&r.ID, &r.Layout, &r.ContextDigest, &r.Reference, &r.Status, &r.Error, &startedAt, &durationMs); err != nil {
			return nil, fmt.Errorf("failed to scan build run: %w", err)
		}

		r.StartedAt = time.UnixMilli(startedAt).UTC()
		r.Duration = time.Duration(durationMs) * time.Millisecond
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
