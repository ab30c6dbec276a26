package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, role *domain.UserRole) ([]*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole, department string) (*domain.User, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// Service implements user profile and administration operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	now   func() time.Time
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		now:   time.Now,
	}
}
