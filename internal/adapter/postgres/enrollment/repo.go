// Package enrollment implements the Enrollment repository using PostgreSQL.
package enrollment

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

// Repo provides enrollment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new enrollment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type enrollmentRow struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	CampusEventID uuid.UUID `db:"campus_event_id"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r enrollmentRow) toDomain() *domain.Enrollment {
	return &domain.Enrollment{
		ID:            r.ID,
		UserID:        r.UserID,
		CampusEventID: r.CampusEventID,
		CreatedAt:     r.CreatedAt,
	}
}

// Create inserts an enrollment. A second enrollment of the same user in the
// same event yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	var row enrollmentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO enrollments (id, user_id, campus_event_id, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, campus_event_id, created_at`,
		e.ID, e.UserID, e.CampusEventID, e.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "enrollment", e.CampusEventID)
	}
	return row.toDomain(), nil
}

// CountByEvent returns the number of users enrolled in a campus event.
func (r *Repo) CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM enrollments WHERE campus_event_id = $1`, eventID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count enrollments for event %s: %w", eventID, err)
	}
	return n, nil
}

// Exists reports whether the user is enrolled in the campus event.
func (r *Repo) Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	var ok bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM enrollments WHERE user_id = $1 AND campus_event_id = $2)`,
		userID, eventID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check enrollment: %w", err)
	}
	return ok, nil
}

// ListByUser returns the user's enrollments, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Enrollment, error) {
	var rows []enrollmentRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT id, user_id, campus_event_id, created_at
		 FROM enrollments WHERE user_id = $1
		 ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list enrollments for user %s: %w", userID, err)
	}

	out := make([]*domain.Enrollment, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
