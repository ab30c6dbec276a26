// Package event implements campus and off-campus event repositories using PostgreSQL.
package event

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

const (
	campusColumns    = `id, program_id, title, location, starts_at, ends_at, hours, capacity, created_at`
	offCampusColumns = `id, title, organizer, location, starts_at, ends_at, hours, created_by, created_at`
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type campusRow struct {
	ID        uuid.UUID  `db:"id"`
	ProgramID *uuid.UUID `db:"program_id"`
	Title     string     `db:"title"`
	Location  string     `db:"location"`
	StartsAt  time.Time  `db:"starts_at"`
	EndsAt    time.Time  `db:"ends_at"`
	Hours     float64    `db:"hours"`
	Capacity  int        `db:"capacity"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r campusRow) toDomain() *domain.CampusEvent {
	return &domain.CampusEvent{
		ID:        r.ID,
		ProgramID: r.ProgramID,
		Title:     r.Title,
		Location:  r.Location,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		Hours:     r.Hours,
		Capacity:  r.Capacity,
		CreatedAt: r.CreatedAt,
	}
}

type offCampusRow struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	Organizer string    `db:"organizer"`
	Location  string    `db:"location"`
	StartsAt  time.Time `db:"starts_at"`
	EndsAt    time.Time `db:"ends_at"`
	Hours     float64   `db:"hours"`
	CreatedBy uuid.UUID `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
}

func (r offCampusRow) toDomain() *domain.OffCampusEvent {
	return &domain.OffCampusEvent{
		ID:        r.ID,
		Title:     r.Title,
		Organizer: r.Organizer,
		Location:  r.Location,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		Hours:     r.Hours,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Campus events
// ---------------------------------------------------------------------------

// CreateCampus inserts a campus event. An unknown program yields ErrNotFound.
func (r *Repo) CreateCampus(ctx context.Context, e *domain.CampusEvent) (*domain.CampusEvent, error) {
	var row campusRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO campus_events (id, program_id, title, location, starts_at, ends_at, hours, capacity, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+campusColumns,
		e.ID, e.ProgramID, e.Title, e.Location, e.StartsAt, e.EndsAt, e.Hours, e.Capacity, e.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "campus_event", e.ID)
	}
	return row.toDomain(), nil
}

// GetCampus returns a campus event by primary key.
func (r *Repo) GetCampus(ctx context.Context, id uuid.UUID) (*domain.CampusEvent, error) {
	return r.getCampus(ctx, `SELECT `+campusColumns+` FROM campus_events WHERE id = $1`, id)
}

// GetCampusForUpdate returns a campus event and locks its row until the
// surrounding transaction ends. Must be called inside RunInTx.
func (r *Repo) GetCampusForUpdate(ctx context.Context, id uuid.UUID) (*domain.CampusEvent, error) {
	return r.getCampus(ctx, `SELECT `+campusColumns+` FROM campus_events WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repo) getCampus(ctx context.Context, query string, id uuid.UUID) (*domain.CampusEvent, error) {
	var row campusRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, id); err != nil {
		return nil, postgres.MapError(err, "campus_event", id)
	}
	return row.toDomain(), nil
}

// ListCampus returns campus events ordered by start time.
func (r *Repo) ListCampus(ctx context.Context, f domain.CampusEventFilter) ([]*domain.CampusEvent, error) {
	b := postgres.Builder.Select(campusColumns).From("campus_events").OrderBy("starts_at", "id")
	if f.ProgramID != nil {
		b = b.Where(sq.Eq{"program_id": *f.ProgramID})
	}
	if f.From != nil {
		b = b.Where(sq.GtOrEq{"starts_at": *f.From})
	}
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list campus events: %w", err)
	}

	var rows []campusRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list campus events: %w", err)
	}

	events := make([]*domain.CampusEvent, len(rows))
	for i, row := range rows {
		events[i] = row.toDomain()
	}
	return events, nil
}

// ---------------------------------------------------------------------------
// Off-campus events
// ---------------------------------------------------------------------------

// CreateOffCampus inserts an off-campus event.
func (r *Repo) CreateOffCampus(ctx context.Context, e *domain.OffCampusEvent) (*domain.OffCampusEvent, error) {
	var row offCampusRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO off_campus_events (id, title, organizer, location, starts_at, ends_at, hours, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+offCampusColumns,
		e.ID, e.Title, e.Organizer, e.Location, e.StartsAt, e.EndsAt, e.Hours, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "off_campus_event", e.ID)
	}
	return row.toDomain(), nil
}

// GetOffCampus returns an off-campus event by primary key.
func (r *Repo) GetOffCampus(ctx context.Context, id uuid.UUID) (*domain.OffCampusEvent, error) {
	var row offCampusRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`SELECT `+offCampusColumns+` FROM off_campus_events WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "off_campus_event", id)
	}
	return row.toDomain(), nil
}
