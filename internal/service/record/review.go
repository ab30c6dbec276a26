package record

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// ListStatusLogs returns the status history of a record visible to the caller.
func (s *Service) ListStatusLogs(ctx context.Context, recordID uuid.UUID) ([]*domain.StatusChangeLog, error) {
	caller, err := s.actor(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.ListStatusLogs: %w", err)
	}
	if _, _, err := s.visible(ctx, caller, recordID); err != nil {
		return nil, fmt.Errorf("record.ListStatusLogs: %w", err)
	}

	logs, err := s.logs.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("record.ListStatusLogs: %w", err)
	}
	return logs, nil
}

// AddReviewNote adds a reviewer comment. Any reviewer who can see the record
// may comment on it, except on their own record.
func (s *Service) AddReviewNote(ctx context.Context, input AddNoteInput) (*domain.ReviewNote, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	caller, err := s.actor(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.AddReviewNote: %w", err)
	}
	rec, owner, err := s.visible(ctx, caller, input.RecordID)
	if err != nil {
		return nil, fmt.Errorf("record.AddReviewNote: %w", err)
	}
	if !caller.Role.IsReviewer() || caller.ID == owner.ID {
		return nil, fmt.Errorf("record.AddReviewNote: %w", domain.ErrForbidden)
	}

	note, err := s.notes.Create(ctx, &domain.ReviewNote{
		ID:         uuid.New(),
		RecordID:   rec.ID,
		ReviewerID: caller.ID,
		Body:       strings.TrimSpace(input.Body),
		CreatedAt:  s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("record.AddReviewNote: %w", err)
	}
	return note, nil
}

// ListReviewNotes returns reviewer comments on a record visible to the caller.
func (s *Service) ListReviewNotes(ctx context.Context, recordID uuid.UUID) ([]*domain.ReviewNote, error) {
	caller, err := s.actor(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.ListReviewNotes: %w", err)
	}
	if _, _, err := s.visible(ctx, caller, recordID); err != nil {
		return nil, fmt.Errorf("record.ListReviewNotes: %w", err)
	}

	notes, err := s.notes.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, fmt.Errorf("record.ListReviewNotes: %w", err)
	}
	return notes, nil
}
