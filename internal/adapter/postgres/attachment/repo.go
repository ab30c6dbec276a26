// Package attachment implements the RecordAttachment repository using PostgreSQL.
// File contents live in the storage adapter; this table holds metadata only.
package attachment

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

const attachmentColumns = `id, record_id, file_name, content_type, size_bytes, storage_key, created_at`

// Repo provides attachment metadata persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attachment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type attachmentRow struct {
	ID          uuid.UUID `db:"id"`
	RecordID    uuid.UUID `db:"record_id"`
	FileName    string    `db:"file_name"`
	ContentType string    `db:"content_type"`
	SizeBytes   int64     `db:"size_bytes"`
	StorageKey  string    `db:"storage_key"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r attachmentRow) toDomain() *domain.RecordAttachment {
	return &domain.RecordAttachment{
		ID:          r.ID,
		RecordID:    r.RecordID,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		SizeBytes:   r.SizeBytes,
		StorageKey:  r.StorageKey,
		CreatedAt:   r.CreatedAt,
	}
}

// Create inserts attachment metadata.
func (r *Repo) Create(ctx context.Context, a *domain.RecordAttachment) (*domain.RecordAttachment, error) {
	var row attachmentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO record_attachments (id, record_id, file_name, content_type, size_bytes, storage_key, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+attachmentColumns,
		a.ID, a.RecordID, a.FileName, a.ContentType, a.SizeBytes, a.StorageKey, a.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "attachment", a.ID)
	}
	return row.toDomain(), nil
}

// GetByID returns attachment metadata by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RecordAttachment, error) {
	var row attachmentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`SELECT `+attachmentColumns+` FROM record_attachments WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "attachment", id)
	}
	return row.toDomain(), nil
}

// ListByRecord returns a record's attachments, oldest first.
func (r *Repo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordAttachment, error) {
	var rows []attachmentRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT `+attachmentColumns+` FROM record_attachments WHERE record_id = $1 ORDER BY created_at, id`, recordID)
	if err != nil {
		return nil, fmt.Errorf("list attachments for record %s: %w", recordID, err)
	}

	out := make([]*domain.RecordAttachment, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
