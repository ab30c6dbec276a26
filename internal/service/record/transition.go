package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// TransitionResult is the committed state after a transition.
type TransitionResult struct {
	Record *domain.Record
	Log    *domain.StatusChangeLog
	Note   *domain.ReviewNote
}

// Transition moves a record one step forward through the review workflow.
// Illegal targets are rejected before anything is written. The status update,
// the status log entry and the optional note are committed together.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (*TransitionResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor, err := s.actor(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.Transition: %w", err)
	}

	rec, err := s.records.GetByID(ctx, input.RecordID)
	if err != nil {
		return nil, fmt.Errorf("record.Transition: %w", err)
	}
	if err := domain.CheckTransition(rec.Status, input.Target); err != nil {
		return nil, err
	}

	owner, err := s.owner(ctx, actor, rec)
	if err != nil {
		return nil, fmt.Errorf("record.Transition: %w", err)
	}
	if !actor.CanReview(owner, input.Target) {
		return nil, fmt.Errorf("record.Transition: %w", domain.ErrForbidden)
	}

	var result TransitionResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		locked, err := s.records.GetByIDForUpdate(ctx, input.RecordID)
		if err != nil {
			return fmt.Errorf("lock record: %w", err)
		}
		// Another reviewer may have moved the record since it was read.
		if err := domain.CheckTransition(locked.Status, input.Target); err != nil {
			return err
		}

		updated, err := s.records.UpdateStatus(ctx, locked.ID, locked.Version, input.Target)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		entry, err := s.logs.Append(ctx, &domain.StatusChangeLog{
			ID:             uuid.New(),
			RecordID:       locked.ID,
			PreviousStatus: locked.Status,
			NewStatus:      input.Target,
			ActorID:        actor.ID,
			CreatedAt:      s.now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("append status log: %w", err)
		}

		result = TransitionResult{Record: updated, Log: entry}

		if input.Note != nil && strings.TrimSpace(*input.Note) != "" {
			note, err := s.notes.Create(ctx, &domain.ReviewNote{
				ID:         uuid.New(),
				RecordID:   locked.ID,
				ReviewerID: actor.ID,
				Body:       strings.TrimSpace(*input.Note),
				CreatedAt:  s.now().UTC(),
			})
			if err != nil {
				return fmt.Errorf("add review note: %w", err)
			}
			result.Note = note
		}
		return nil
	})
	if err != nil {
		var te *domain.TransitionError
		if errors.As(err, &te) {
			return nil, te
		}
		return nil, fmt.Errorf("record.Transition: %w", err)
	}

	from := result.Log.PreviousStatus
	s.metrics.TransitionCommitted(from, input.Target)
	s.log.InfoContext(ctx, "record transitioned",
		slog.String("record_id", rec.ID.String()),
		slog.String("actor_id", actor.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", input.Target.String()),
	)

	s.notifyOwner(ctx, owner, result.Record, from, input.Target)
	return &result, nil
}

// notifyOwner mails the owner outside the request. Failures are only logged.
func (s *Service) notifyOwner(ctx context.Context, owner *domain.User, rec *domain.Record, from, to domain.RecordStatus) {
	ctx = context.WithoutCancel(ctx)
	s.async(func() {
		if err := s.notifier.StatusChanged(ctx, owner, rec, from, to); err != nil {
			s.log.WarnContext(ctx, "status notification failed",
				slog.String("record_id", rec.ID.String()),
				slog.String("error", err.Error()),
			)
		}
	})
}
