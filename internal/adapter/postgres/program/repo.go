// Package program implements the Program repository using PostgreSQL.
package program

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

// Repo provides program persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new program repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type programRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r programRow) toDomain() *domain.Program {
	return &domain.Program{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// Create inserts a program. A duplicate name yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p *domain.Program) (*domain.Program, error) {
	var row programRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO programs (id, name, description, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, name, description, created_at`,
		p.ID, p.Name, p.Description, p.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "program", p.Name)
	}
	return row.toDomain(), nil
}

// GetByID returns a program by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Program, error) {
	var row programRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`SELECT id, name, description, created_at FROM programs WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "program", id)
	}
	return row.toDomain(), nil
}

// List returns all programs ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Program, error) {
	var rows []programRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT id, name, description, created_at FROM programs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}

	programs := make([]*domain.Program, len(rows))
	for i, row := range rows {
		programs[i] = row.toDomain()
	}
	return programs, nil
}
