package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/pkg/ctxutil"
)

// CreateUser registers a CAS username locally (admin only). Users can only
// log in after an administrator has created them.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		ID:         uuid.New(),
		Username:   strings.TrimSpace(input.Username),
		Email:      strings.ToLower(strings.TrimSpace(input.Email)),
		Name:       strings.TrimSpace(input.Name),
		Department: strings.TrimSpace(input.Department),
		Role:       input.Role,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
		slog.String("role", user.Role.String()),
	)
	return user, nil
}

// SetUserRole changes the role and department of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, input SetRoleInput) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Prevent admin from demoting themselves.
	if callerID, ok := ctxutil.UserIDFromCtx(ctx); ok && callerID == targetUserID && input.Role != domain.UserRoleAdmin {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	user, err := s.users.UpdateRole(ctx, targetUserID, input.Role, strings.TrimSpace(input.Department))
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", input.Role.String()),
	)
	return user, nil
}

// DeactivateUser blocks a user from logging in and from using existing tokens (admin only).
func (s *Service) DeactivateUser(ctx context.Context, targetUserID uuid.UUID) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if callerID, ok := ctxutil.UserIDFromCtx(ctx); ok && callerID == targetUserID {
		return domain.NewValidationError("user_id", "cannot deactivate yourself")
	}

	if err := s.users.Deactivate(ctx, targetUserID); err != nil {
		return fmt.Errorf("user.DeactivateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deactivated", slog.String("target_user_id", targetUserID.String()))
	return nil
}

// ListUsers returns all users, optionally filtered by role (admin only).
func (s *Service) ListUsers(ctx context.Context, role *domain.UserRole) ([]*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if role != nil && !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role")
	}

	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}
