// Package catalog manages training programmes, campus events and enrollments.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// programRepo defines the program repository interface needed by catalog service.
type programRepo interface {
	Create(ctx context.Context, p *domain.Program) (*domain.Program, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Program, error)
	List(ctx context.Context) ([]*domain.Program, error)
}

// eventRepo defines the campus event repository interface needed by catalog service.
type eventRepo interface {
	CreateCampus(ctx context.Context, e *domain.CampusEvent) (*domain.CampusEvent, error)
	GetCampus(ctx context.Context, id uuid.UUID) (*domain.CampusEvent, error)
	GetCampusForUpdate(ctx context.Context, id uuid.UUID) (*domain.CampusEvent, error)
	ListCampus(ctx context.Context, f domain.CampusEventFilter) ([]*domain.CampusEvent, error)
}

// enrollmentRepo defines the enrollment repository interface needed by catalog service.
type enrollmentRepo interface {
	Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error)
	CountByEvent(ctx context.Context, eventID uuid.UUID) (int, error)
	Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Enrollment, error)
}

// txManager defines the transaction manager interface needed by catalog service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog operations.
type Service struct {
	log         *slog.Logger
	programs    programRepo
	events      eventRepo
	enrollments enrollmentRepo
	tx          txManager
	now         func() time.Time
}

// NewService creates a new catalog service instance.
func NewService(logger *slog.Logger, programs programRepo, events eventRepo, enrollments enrollmentRepo, tx txManager) *Service {
	return &Service{
		log:         logger.With("service", "catalog"),
		programs:    programs,
		events:      events,
		enrollments: enrollments,
		tx:          tx,
		now:         time.Now,
	}
}
