// Package record implements the training record workflow: submission,
// review transitions, notes and evidence attachments.
package record

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/heartmarshall/trainrec-backend/internal/config"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/pkg/ctxutil"
)

// recordRepo defines the record repository interface needed by record service.
type recordRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, expectedVersion int, status domain.RecordStatus) (*domain.Record, error)
	List(ctx context.Context, f domain.RecordFilter) ([]*domain.Record, int, error)
}

// statusLogRepo defines the status change log interface needed by record service.
type statusLogRepo interface {
	Append(ctx context.Context, entry *domain.StatusChangeLog) (*domain.StatusChangeLog, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*domain.StatusChangeLog, error)
}

// noteRepo defines the review note repository interface needed by record service.
type noteRepo interface {
	Create(ctx context.Context, n *domain.ReviewNote) (*domain.ReviewNote, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*domain.ReviewNote, error)
}

// attachmentRepo defines the attachment metadata interface needed by record service.
type attachmentRepo interface {
	Create(ctx context.Context, a *domain.RecordAttachment) (*domain.RecordAttachment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RecordAttachment, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordAttachment, error)
}

// userRepo defines the user lookup needed by record service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// eventRepo defines the event repository interface needed by record service.
type eventRepo interface {
	GetCampus(ctx context.Context, id uuid.UUID) (*domain.CampusEvent, error)
	CreateOffCampus(ctx context.Context, e *domain.OffCampusEvent) (*domain.OffCampusEvent, error)
}

// enrollmentRepo defines the enrollment lookup needed by record service.
type enrollmentRepo interface {
	Exists(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
}

// txManager defines the transaction manager interface needed by record service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// fileStore defines the attachment content store needed by record service.
type fileStore interface {
	Put(ctx context.Context, key string, r io.Reader, limit int64) (int64, error)
	Open(ctx context.Context, key string) (afero.File, error)
	Delete(ctx context.Context, key string) error
}

// statusNotifier is told about every committed transition.
type statusNotifier interface {
	StatusChanged(ctx context.Context, owner *domain.User, rec *domain.Record, from, to domain.RecordStatus) error
}

// transitionRecorder counts committed transitions.
type transitionRecorder interface {
	TransitionCommitted(from, to domain.RecordStatus)
}

// Deps groups the collaborators of the record service.
type Deps struct {
	Records     recordRepo
	Logs        statusLogRepo
	Notes       noteRepo
	Attachments attachmentRepo
	Users       userRepo
	Events      eventRepo
	Enrollments enrollmentRepo
	Tx          txManager
	Files       fileStore
	Notifier    statusNotifier
	Metrics     transitionRecorder
}

// Service implements record operations.
type Service struct {
	log         *slog.Logger
	records     recordRepo
	logs        statusLogRepo
	notes       noteRepo
	attachments attachmentRepo
	users       userRepo
	events      eventRepo
	enrollments enrollmentRepo
	tx          txManager
	files       fileStore
	notifier    statusNotifier
	metrics     transitionRecorder
	cfg         config.RecordsConfig

	now   func() time.Time
	async func(func())
}

// NewService creates a new record service instance. Notifier and Metrics may be nil.
func NewService(logger *slog.Logger, deps Deps, cfg config.RecordsConfig) *Service {
	s := &Service{
		log:         logger.With("service", "record"),
		records:     deps.Records,
		logs:        deps.Logs,
		notes:       deps.Notes,
		attachments: deps.Attachments,
		users:       deps.Users,
		events:      deps.Events,
		enrollments: deps.Enrollments,
		tx:          deps.Tx,
		files:       deps.Files,
		notifier:    deps.Notifier,
		metrics:     deps.Metrics,
		cfg:         cfg,
		now:         time.Now,
		async:       func(f func()) { go f() },
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.metrics == nil {
		s.metrics = nopRecorder{}
	}
	return s
}

// actor loads the authenticated caller.
func (s *Service) actor(ctx context.Context) (*domain.User, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load caller: %w", err)
	}
	if !u.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

// visible loads a record and its owner and checks that caller may read it.
// Records the caller may not see are reported as not found.
func (s *Service) visible(ctx context.Context, caller *domain.User, id uuid.UUID) (*domain.Record, *domain.User, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	owner, err := s.owner(ctx, caller, rec)
	if err != nil {
		return nil, nil, err
	}
	if !caller.CanView(owner) {
		return nil, nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	return rec, owner, nil
}

func (s *Service) owner(ctx context.Context, caller *domain.User, rec *domain.Record) (*domain.User, error) {
	if rec.UserID == caller.ID {
		return caller, nil
	}
	owner, err := s.users.GetByID(ctx, rec.UserID)
	if err != nil {
		return nil, fmt.Errorf("load record owner: %w", err)
	}
	return owner, nil
}

func (s *Service) pageSize(limit int) int {
	if limit <= 0 || limit > s.cfg.QueuePageSize {
		return s.cfg.QueuePageSize
	}
	return limit
}

type nopNotifier struct{}

func (nopNotifier) StatusChanged(context.Context, *domain.User, *domain.Record, domain.RecordStatus, domain.RecordStatus) error {
	return nil
}

type nopRecorder struct{}

func (nopRecorder) TransitionCommitted(domain.RecordStatus, domain.RecordStatus) {}
