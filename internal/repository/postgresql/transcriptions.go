package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/voicebot/internal/domain"
)

const TableTranscriptions = "transcriptions"

var transcriptionColumns = []string{
	"id",
	"filename",
	"source",
	"text",
	"keywords",
	"size_bytes",
	"archive_key",
	"conversion_sec",
	"asr_sec",
	"keyword_sec",
	"total_sec",
	"created_at",
}

type TranscriptionsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewTranscriptionsRepository(pool *pgxpool.Pool) *TranscriptionsRepository {
	return &TranscriptionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *TranscriptionsRepository) SaveTranscription(ctx context.Context, t *domain.Transcription) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableTranscriptions).
		Columns(transcriptionColumns...).
		Values(
			t.ID,
			t.Filename,
			t.Source,
			t.Text,
			t.Keywords,
			t.SizeBytes,
			t.ArchiveKey,
			t.Timings.ConversionSec,
			t.Timings.ASRSec,
			t.Timings.KeywordSec,
			t.Timings.TotalSec,
			t.CreatedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// Transcriptions returns a page of transcriptions, newest first, and the total count.
func (r *TranscriptionsRepository) Transcriptions(ctx context.Context, limit, offset uint64) ([]*domain.Transcription, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableTranscriptions).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(transcriptionColumns...).
		From(TableTranscriptions).
		OrderBy("created_at DESC", "id").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	transcriptions, err := pgx.CollectRows(rows, scanTranscription)
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return transcriptions, total, nil
}

func (r *TranscriptionsRepository) TranscriptionByID(ctx context.Context, id uuid.UUID) (*domain.Transcription, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(transcriptionColumns...).
		From(TableTranscriptions).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	t, err := pgx.CollectExactlyOneRow(rows, scanTranscription)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, collectRowsError(err)
	}

	return t, nil
}

func scanTranscription(row pgx.CollectableRow) (*domain.Transcription, error) {
	var t domain.Transcription

	err := row.Scan(
		&t.ID,
		&t.Filename,
		&t.Source,
		&t.Text,
		&t.Keywords,
		&t.SizeBytes,
		&t.ArchiveKey,
		&t.Timings.ConversionSec,
		&t.Timings.ASRSec,
		&t.Timings.KeywordSec,
		&t.Timings.TotalSec,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if t.Keywords == nil {
		t.Keywords = []string{}
	}

	return &t, nil
}
