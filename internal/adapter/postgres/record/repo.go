// Package record implements the Record repository using PostgreSQL.
// Status updates are guarded by the row version; callers hold the row lock
// from GetByIDForUpdate inside a transaction.
package record

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

const recordColumns = `id, user_id, campus_event_id, off_campus_event_id, content, status, version, created_at, updated_at`

var qualifiedColumns = []string{
	"r.id", "r.user_id", "r.campus_event_id", "r.off_campus_event_id", "r.content",
	"r.status", "r.version", "r.created_at", "r.updated_at",
}

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type recordRow struct {
	ID               uuid.UUID  `db:"id"`
	UserID           uuid.UUID  `db:"user_id"`
	CampusEventID    *uuid.UUID `db:"campus_event_id"`
	OffCampusEventID *uuid.UUID `db:"off_campus_event_id"`
	Content          string     `db:"content"`
	Status           string     `db:"status"`
	Version          int        `db:"version"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (r recordRow) toDomain() *domain.Record {
	return &domain.Record{
		ID:               r.ID,
		UserID:           r.UserID,
		CampusEventID:    r.CampusEventID,
		OffCampusEventID: r.OffCampusEventID,
		Content:          r.Content,
		Status:           domain.RecordStatus(r.Status),
		Version:          r.Version,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a record. A second record for the same user and campus event
// yields ErrAlreadyExists; a row referencing both or neither event kind is
// rejected by the database with ErrValidation.
func (r *Repo) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	var row recordRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO records (id, user_id, campus_event_id, off_campus_event_id, content, status, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+recordColumns,
		rec.ID, rec.UserID, rec.CampusEventID, rec.OffCampusEventID, rec.Content,
		string(rec.Status), rec.Version, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "record", rec.ID)
	}
	return row.toDomain(), nil
}

// UpdateStatus moves a record to status if its version still equals
// expectedVersion, bumping the version. A stale version yields ErrConflict.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.RecordStatus) (*domain.Record, error) {
	var rows []recordRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`UPDATE records SET status = $3, version = version + 1, updated_at = now()
		 WHERE id = $1 AND version = $2
		 RETURNING `+recordColumns,
		id, expectedVersion, string(status),
	)
	if err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("record %s version %d: %w", id, expectedVersion, domain.ErrConflict)
	}
	return rows[0].toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	return r.get(ctx, `SELECT `+recordColumns+` FROM records WHERE id = $1`, id)
}

// GetByIDForUpdate returns a record and locks its row until the surrounding
// transaction ends. Must be called inside RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	return r.get(ctx, `SELECT `+recordColumns+` FROM records WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repo) get(ctx context.Context, query string, id uuid.UUID) (*domain.Record, error) {
	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, id); err != nil {
		return nil, postgres.MapError(err, "record", id)
	}
	return row.toDomain(), nil
}

// List returns records matching f, oldest first, and the total number of
// matches ignoring Limit and Offset.
func (r *Repo) List(ctx context.Context, f domain.RecordFilter) ([]*domain.Record, int, error) {
	where := sq.And{}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		where = append(where, sq.Eq{"r.status": statuses})
	}
	if f.UserID != nil {
		where = append(where, sq.Eq{"r.user_id": *f.UserID})
	}
	if f.ExcludeUser != nil {
		where = append(where, sq.NotEq{"r.user_id": *f.ExcludeUser})
	}
	if f.Department != nil {
		where = append(where, sq.Eq{"u.department": *f.Department})
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := postgres.Builder.
		Select("count(*)").
		From("records r").
		Join("users u ON u.id = r.user_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count records: %w", err)
	}
	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	b := postgres.Builder.
		Select(qualifiedColumns...).
		From("records r").
		Join("users u ON u.id = r.user_id").
		Where(where).
		OrderBy("r.created_at", "r.id")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list records: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, querier, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list records: %w", err)
	}

	records := make([]*domain.Record, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, total, nil
}
