package record

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// CreateRecord submits a training record for the caller. A campus record
// requires an enrollment; an off-campus record creates its event in the
// same transaction.
func (s *Service) CreateRecord(ctx context.Context, input CreateRecordInput) (*domain.Record, error) {
	if err := input.Validate(s.cfg.MaxContentLength); err != nil {
		return nil, err
	}

	caller, err := s.actor(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.CreateRecord: %w", err)
	}

	now := s.now().UTC()
	rec := &domain.Record{
		ID:        uuid.New(),
		UserID:    caller.ID,
		Content:   strings.TrimSpace(input.Content),
		Status:    domain.RecordStatusSubmitted,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if input.CampusEventID != nil {
		if _, err := s.events.GetCampus(ctx, *input.CampusEventID); err != nil {
			return nil, fmt.Errorf("record.CreateRecord: %w", err)
		}
		enrolled, err := s.enrollments.Exists(ctx, caller.ID, *input.CampusEventID)
		if err != nil {
			return nil, fmt.Errorf("record.CreateRecord: %w", err)
		}
		if !enrolled {
			return nil, domain.NewValidationError("campus_event_id", "not enrolled in this event")
		}
		rec.CampusEventID = input.CampusEventID

		created, err := s.records.Create(ctx, rec)
		if err != nil {
			return nil, fmt.Errorf("record.CreateRecord: %w", err)
		}
		s.logCreated(ctx, created)
		return created, nil
	}

	var created *domain.Record
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		oc := input.OffCampus
		ev, err := s.events.CreateOffCampus(ctx, &domain.OffCampusEvent{
			ID:        uuid.New(),
			Title:     strings.TrimSpace(oc.Title),
			Organizer: strings.TrimSpace(oc.Organizer),
			Location:  strings.TrimSpace(oc.Location),
			StartsAt:  oc.StartsAt.UTC(),
			EndsAt:    oc.EndsAt.UTC(),
			Hours:     oc.Hours,
			CreatedBy: caller.ID,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create off-campus event: %w", err)
		}
		rec.OffCampusEventID = &ev.ID

		created, err = s.records.Create(ctx, rec)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("record.CreateRecord: %w", err)
	}

	s.logCreated(ctx, created)
	return created, nil
}

func (s *Service) logCreated(ctx context.Context, rec *domain.Record) {
	s.log.InfoContext(ctx, "record submitted",
		slog.String("record_id", rec.ID.String()),
		slog.String("user_id", rec.UserID.String()),
	)
}

// GetRecord returns a record the caller may view: its owner, a reviewer
// of the owner's department, a school reviewer or an admin.
func (s *Service) GetRecord(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	caller, err := s.actor(ctx)
	if err != nil {
		return nil, fmt.Errorf("record.GetRecord: %w", err)
	}
	rec, _, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, fmt.Errorf("record.GetRecord: %w", err)
	}
	return rec, nil
}

// ListMyRecords returns a page of the caller's own records and the total count.
func (s *Service) ListMyRecords(ctx context.Context, page QueueInput) ([]*domain.Record, int, error) {
	caller, err := s.actor(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("record.ListMyRecords: %w", err)
	}

	recs, total, err := s.records.List(ctx, domain.RecordFilter{
		UserID: &caller.ID,
		Limit:  s.pageSize(page.Limit),
		Offset: max(page.Offset, 0),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("record.ListMyRecords: %w", err)
	}
	return recs, total, nil
}

// ListReviewQueue returns records whose next step the caller's role can
// perform. Department reviewers see submitted records of their own
// department, school reviewers see department-reviewed records and admins
// see both. The caller's own records are never included.
func (s *Service) ListReviewQueue(ctx context.Context, page QueueInput) ([]*domain.Record, int, error) {
	caller, err := s.actor(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("record.ListReviewQueue: %w", err)
	}

	filter := domain.RecordFilter{
		ExcludeUser: &caller.ID,
		Limit:       s.pageSize(page.Limit),
		Offset:      max(page.Offset, 0),
	}

	switch caller.Role {
	case domain.UserRoleDepartmentReviewer:
		if caller.Department == "" {
			return []*domain.Record{}, 0, nil
		}
		dept := caller.Department
		filter.Department = &dept
		filter.Statuses = []domain.RecordStatus{domain.RecordStatusSubmitted}
	case domain.UserRoleSchoolReviewer:
		filter.Statuses = []domain.RecordStatus{domain.RecordStatusDepartmentReviewed}
	case domain.UserRoleAdmin:
		filter.Statuses = []domain.RecordStatus{domain.RecordStatusSubmitted, domain.RecordStatusDepartmentReviewed}
	default:
		return nil, 0, fmt.Errorf("record.ListReviewQueue: %w", domain.ErrForbidden)
	}

	recs, total, err := s.records.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("record.ListReviewQueue: %w", err)
	}
	return recs, total, nil
}
