// Package user implements the User repository using PostgreSQL.
package user

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

const userColumns = `id, username, email, name, department, role, is_active, last_login_at, created_at, updated_at`

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type userRow struct {
	ID          uuid.UUID  `db:"id"`
	Username    string     `db:"username"`
	Email       string     `db:"email"`
	Name        string     `db:"name"`
	Department  string     `db:"department"`
	Role        string     `db:"role"`
	IsActive    bool       `db:"is_active"`
	LastLoginAt *time.Time `db:"last_login_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:          r.ID,
		Username:    r.Username,
		Email:       r.Email,
		Name:        r.Name,
		Department:  r.Department,
		Role:        domain.UserRole(r.Role),
		IsActive:    r.IsActive,
		LastLoginAt: r.LastLoginAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByUsername returns a user by CAS username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	if err != nil {
		return nil, postgres.MapError(err, "user", username)
	}
	return row.toDomain(), nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}

	var rows []userRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT `+userColumns+` FROM users WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// List returns users ordered by username, optionally restricted to a role.
func (r *Repo) List(ctx context.Context, role *domain.UserRole) ([]*domain.User, error) {
	b := postgres.Builder.Select(userColumns).From("users").OrderBy("username")
	if role != nil {
		b = b.Where(sq.Eq{"role": string(*role)})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`INSERT INTO users (id, username, email, name, department, role, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+userColumns,
		u.ID, u.Username, u.Email, u.Name, u.Department, string(u.Role), u.IsActive, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Username)
	}
	return row.toDomain(), nil
}

// UpdateRole changes a user's role and department.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole, department string) (*domain.User, error) {
	var row userRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row,
		`UPDATE users SET role = $2, department = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, string(role), department,
	)
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// Deactivate marks a user inactive. Existing tokens stop resolving to a user.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE users SET is_active = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// TouchLastLogin records a successful login at the given time.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
