package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/pkg/ctxutil"
)

// ErrEventFull is returned when a campus event has no free places.
var ErrEventFull = fmt.Errorf("event is full: %w", domain.ErrConflict)

// Enroll registers the caller for a campus event. The event row is locked
// so that concurrent enrollments cannot exceed its capacity.
func (s *Service) Enroll(ctx context.Context, eventID uuid.UUID) (*domain.Enrollment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var enrollment *domain.Enrollment
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ev, err := s.events.GetCampusForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if !ev.StartsAt.After(s.now()) {
			return domain.NewValidationError("event_id", "event has already started")
		}

		exists, err := s.enrollments.Exists(ctx, userID, eventID)
		if err != nil {
			return fmt.Errorf("check enrollment: %w", err)
		}
		if exists {
			return fmt.Errorf("enrollment: %w", domain.ErrAlreadyExists)
		}

		count, err := s.enrollments.CountByEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("count enrollments: %w", err)
		}
		if !ev.HasCapacity(count) {
			return ErrEventFull
		}

		enrollment, err = s.enrollments.Create(ctx, &domain.Enrollment{
			ID:            uuid.New(),
			UserID:        userID,
			CampusEventID: eventID,
			CreatedAt:     s.now().UTC(),
		})
		return err
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, ve
		}
		return nil, fmt.Errorf("catalog.Enroll: %w", err)
	}

	s.log.InfoContext(ctx, "enrolled",
		slog.String("user_id", userID.String()),
		slog.String("event_id", eventID.String()),
	)
	return enrollment, nil
}

// ListMyEnrollments returns the caller's enrollments.
func (s *Service) ListMyEnrollments(ctx context.Context) ([]*domain.Enrollment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	list, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListMyEnrollments: %w", err)
	}
	return list, nil
}
