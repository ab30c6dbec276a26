// Package shortlink implements the ShortLink repository using PostgreSQL.
package shortlink

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

const linkColumns = `code, target_url, created_by, expires_at, hits, created_at`

// Repo provides short link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new short link repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type linkRow struct {
	Code      string     `db:"code"`
	TargetURL string     `db:"target_url"`
	CreatedBy uuid.UUID  `db:"created_by"`
	ExpiresAt *time.Time `db:"expires_at"`
	Hits      int64      `db:"hits"`
	CreatedAt time.Time  `db:"created_at"`
}

func (r linkRow) toDomain() *domain.ShortLink {
	return &domain.ShortLink{
		Code:      r.Code,
		TargetURL: r.TargetURL,
		CreatedBy: r.CreatedBy,
		ExpiresAt: r.ExpiresAt,
		Hits:      r.Hits,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts a short link. A taken code yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, l *domain.ShortLink) (*domain.ShortLink, error) {
	var row linkRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO short_links (code, target_url, created_by, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+linkColumns,
		l.Code, l.TargetURL, l.CreatedBy, l.ExpiresAt, l.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "short_link", l.Code)
	}
	return row.toDomain(), nil
}

// Resolve returns the link for code and counts the hit. Links expired at now
// are reported as ErrNotFound and not counted.
func (r *Repo) Resolve(ctx context.Context, code string, now time.Time) (*domain.ShortLink, error) {
	var row linkRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`UPDATE short_links SET hits = hits + 1
		 WHERE code = $1 AND (expires_at IS NULL OR expires_at > $2)
		 RETURNING `+linkColumns,
		code, now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "short_link", code)
	}
	return row.toDomain(), nil
}

// PurgeExpired deletes links that expired at or before now and returns how many were removed.
func (r *Repo) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM short_links WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, postgres.MapError(err, "short_link", "expired")
	}
	return tag.RowsAffected(), nil
}
