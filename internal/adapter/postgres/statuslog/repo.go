// Package statuslog implements the append-only status change log using PostgreSQL.
// The table rejects UPDATE and DELETE at the database level.
package statuslog

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

// Repo provides status change log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new status change log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type logRow struct {
	ID             uuid.UUID `db:"id"`
	RecordID       uuid.UUID `db:"record_id"`
	PreviousStatus string    `db:"previous_status"`
	NewStatus      string    `db:"new_status"`
	ActorID        uuid.UUID `db:"actor_id"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r logRow) toDomain() *domain.StatusChangeLog {
	return &domain.StatusChangeLog{
		ID:             r.ID,
		RecordID:       r.RecordID,
		PreviousStatus: domain.RecordStatus(r.PreviousStatus),
		NewStatus:      domain.RecordStatus(r.NewStatus),
		ActorID:        r.ActorID,
		CreatedAt:      r.CreatedAt,
	}
}

// Append writes one log entry.
func (r *Repo) Append(ctx context.Context, entry *domain.StatusChangeLog) (*domain.StatusChangeLog, error) {
	var row logRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO status_change_logs (id, record_id, previous_status, new_status, actor_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, record_id, previous_status, new_status, actor_id, created_at`,
		entry.ID, entry.RecordID, string(entry.PreviousStatus), string(entry.NewStatus), entry.ActorID, entry.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "status_change_log", entry.RecordID)
	}
	return row.toDomain(), nil
}

// ListByRecord returns a record's log entries in the order they were written.
func (r *Repo) ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*domain.StatusChangeLog, error) {
	var rows []logRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT id, record_id, previous_status, new_status, actor_id, created_at
		 FROM status_change_logs WHERE record_id = $1
		 ORDER BY created_at, id`, recordID)
	if err != nil {
		return nil, fmt.Errorf("list status logs for record %s: %w", recordID, err)
	}

	out := make([]*domain.StatusChangeLog, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
