// Package review implements the ReviewNote repository using PostgreSQL.
package review

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

// Repo provides review note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type noteRow struct {
	ID         uuid.UUID `db:"id"`
	RecordID   uuid.UUID `db:"record_id"`
	ReviewerID uuid.UUID `db:"reviewer_id"`
	Body       string    `db:"body"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r noteRow) toDomain() *domain.ReviewNote {
	return &domain.ReviewNote{
		ID:         r.ID,
		RecordID:   r.RecordID,
		ReviewerID: r.ReviewerID,
		Body:       r.Body,
		CreatedAt:  r.CreatedAt,
	}
}

// Create inserts a review note.
func (r *Repo) Create(ctx context.Context, n *domain.ReviewNote) (*domain.ReviewNote, error) {
	var row noteRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO review_notes (id, record_id, reviewer_id, body, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, record_id, reviewer_id, body, created_at`,
		n.ID, n.RecordID, n.ReviewerID, n.Body, n.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "review_note", n.RecordID)
	}
	return row.toDomain(), nil
}

// ListByRecord returns a record's notes, oldest first.
func (r *Repo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*domain.ReviewNote, error) {
	var rows []noteRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT id, record_id, reviewer_id, body, created_at
		 FROM review_notes WHERE record_id = $1
		 ORDER BY created_at, id`, recordID)
	if err != nil {
		return nil, fmt.Errorf("list review notes for record %s: %w", recordID, err)
	}

	out := make([]*domain.ReviewNote, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
