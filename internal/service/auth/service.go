package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/adapter/provider/cas"
	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

// ticketVerifier defines the CAS protocol client needed by auth service.
type ticketVerifier interface {
	Verify(ctx context.Context, ticket, service string) (cas.Result, error)
	LoginURL(service string) string
	LogoutURL(next string) string
}

// tokenIssuer defines the JWT issuance interface needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, time.Time, error)
}

// loginRecorder receives the outcome of every login attempt.
type loginRecorder interface {
	LoginOutcome(outcome string)
}

// Service implements CAS-backed authentication.
type Service struct {
	log      *slog.Logger
	users    userRepo
	verifier ticketVerifier
	jwt      tokenIssuer
	metrics  loginRecorder
	now      func() time.Time
}

// NewService creates a new auth service instance. metrics may be nil.
func NewService(
	logger *slog.Logger,
	users userRepo,
	verifier ticketVerifier,
	jwt tokenIssuer,
	metrics loginRecorder,
) *Service {
	if metrics == nil {
		metrics = nopRecorder{}
	}
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		verifier: verifier,
		jwt:      jwt,
		metrics:  metrics,
		now:      time.Now,
	}
}

// CASLoginURL returns the CAS login page for service, used to restart a failed login.
func (s *Service) CASLoginURL(service string) string {
	return s.verifier.LoginURL(service)
}

// CASLogoutURL returns the CAS logout endpoint, forwarding next when non-empty.
func (s *Service) CASLogoutURL(next string) string {
	return s.verifier.LogoutURL(next)
}

// ResolveUser loads an active user by id for request identities.
func (s *Service) ResolveUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return u, nil
}

type nopRecorder struct{}

func (nopRecorder) LoginOutcome(string) {}
