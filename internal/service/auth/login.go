package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// Failure reasons reported in AuthOutcome.Reason.
const (
	ReasonMissingCredentials = "missing_credentials"
	ReasonTicketRejected     = "ticket_rejected"
	ReasonCASUnavailable     = "cas_unavailable"
	ReasonUnknownUser        = "unknown_user"
	ReasonInactiveUser       = "inactive_user"
	ReasonLookupFailed       = "lookup_failed"
)

// AuthOutcome is the result of authenticating a CAS ticket. User is nil on
// failure and Reason names the failure.
type AuthOutcome struct {
	User   *domain.User
	Reason string
}

// OK reports whether authentication succeeded.
func (o AuthOutcome) OK() bool { return o.User != nil }

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

// Authenticate validates a CAS ticket for service and maps the asserted
// username to an active local user. It never returns an error: every failure
// is logged and reported as an outcome without a user.
func (s *Service) Authenticate(ctx context.Context, ticket, service string) AuthOutcome {
	if ticket == "" || service == "" {
		return s.fail(ctx, ReasonMissingCredentials)
	}

	res, err := s.verifier.Verify(ctx, ticket, service)
	if err != nil {
		s.log.ErrorContext(ctx, "cas ticket validation failed", slog.String("error", err.Error()))
		return s.fail(ctx, ReasonCASUnavailable)
	}
	if !res.OK {
		return s.fail(ctx, ReasonTicketRejected, slog.String("cas_code", res.FailureCode))
	}

	user, err := s.users.GetByUsername(ctx, res.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.fail(ctx, ReasonUnknownUser, slog.String("username", res.Username))
		}
		s.log.ErrorContext(ctx, "user lookup failed", slog.String("username", res.Username), slog.String("error", err.Error()))
		return s.fail(ctx, ReasonLookupFailed)
	}
	if !user.IsActive {
		return s.fail(ctx, ReasonInactiveUser, slog.String("username", res.Username))
	}

	return AuthOutcome{User: user}
}

func (s *Service) fail(ctx context.Context, reason string, attrs ...any) AuthOutcome {
	s.metrics.LoginOutcome(reason)
	s.log.WarnContext(ctx, "cas authentication rejected", append([]any{slog.String("reason", reason)}, attrs...)...)
	return AuthOutcome{Reason: reason}
}

// Login authenticates a CAS ticket and issues an access token. Authentication
// failures are returned as errors wrapping domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		s.metrics.LoginOutcome(ReasonMissingCredentials)
		return nil, err
	}

	outcome := s.Authenticate(ctx, input.Ticket, input.Service)
	if !outcome.OK() {
		return nil, fmt.Errorf("auth.Login %s: %w", outcome.Reason, domain.ErrUnauthorized)
	}

	result, err := s.issue(ctx, outcome.User)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := s.users.TouchLastLogin(ctx, outcome.User.ID, s.now().UTC()); err != nil {
		s.log.WarnContext(ctx, "failed to record last login",
			slog.String("user_id", outcome.User.ID.String()),
			slog.String("error", err.Error()))
	}

	s.metrics.LoginOutcome("success")
	s.log.InfoContext(ctx, "user logged in via cas",
		slog.String("user_id", outcome.User.ID.String()),
		slog.String("username", outcome.User.Username))

	return result, nil
}

// IssueToken issues an access token for an active user without a CAS round
// trip. It backs the admin CLI.
func (s *Service) IssueToken(ctx context.Context, username string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("auth.IssueToken: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("auth.IssueToken %s inactive: %w", username, domain.ErrUnauthorized)
	}
	return s.issue(ctx, user)
}

func (s *Service) issue(_ context.Context, user *domain.User) (*LoginResult, error) {
	token, exp, err := s.jwt.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: user}, nil
}
