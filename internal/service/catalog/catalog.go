package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/pkg/ctxutil"
)

// CreateProgram creates a training programme (admin only).
func (s *Service) CreateProgram(ctx context.Context, input CreateProgramInput) (*domain.Program, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var desc *string
	if input.Description != nil {
		if d := strings.TrimSpace(*input.Description); d != "" {
			desc = &d
		}
	}

	p, err := s.programs.Create(ctx, &domain.Program{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: desc,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateProgram: %w", err)
	}

	s.log.InfoContext(ctx, "program created", slog.String("program_id", p.ID.String()))
	return p, nil
}

// ListPrograms returns all programmes.
func (s *Service) ListPrograms(ctx context.Context) ([]*domain.Program, error) {
	programs, err := s.programs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListPrograms: %w", err)
	}
	return programs, nil
}

// CreateCampusEvent schedules a campus event (admin only).
func (s *Service) CreateCampusEvent(ctx context.Context, input CreateCampusEventInput) (*domain.CampusEvent, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ProgramID != nil {
		if _, err := s.programs.GetByID(ctx, *input.ProgramID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("program_id", "unknown program")
			}
			return nil, fmt.Errorf("catalog.CreateCampusEvent: %w", err)
		}
	}

	ev, err := s.events.CreateCampus(ctx, &domain.CampusEvent{
		ID:        uuid.New(),
		ProgramID: input.ProgramID,
		Title:     strings.TrimSpace(input.Title),
		Location:  strings.TrimSpace(input.Location),
		StartsAt:  input.StartsAt.UTC(),
		EndsAt:    input.EndsAt.UTC(),
		Hours:     input.Hours,
		Capacity:  input.Capacity,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateCampusEvent: %w", err)
	}

	s.log.InfoContext(ctx, "campus event created",
		slog.String("event_id", ev.ID.String()),
		slog.Int("capacity", ev.Capacity),
	)
	return ev, nil
}

// ListCampusEvents returns campus events ordered by start time.
func (s *Service) ListCampusEvents(ctx context.Context, input ListEventsInput) ([]*domain.CampusEvent, error) {
	f := domain.CampusEventFilter{
		ProgramID: input.ProgramID,
		Limit:     clampLimit(input.Limit),
		Offset:    max(input.Offset, 0),
	}
	if input.UpcomingOnly {
		now := s.now().UTC()
		f.From = &now
	}

	events, err := s.events.ListCampus(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListCampusEvents: %w", err)
	}
	return events, nil
}

// GetCampusEvent returns a single campus event.
func (s *Service) GetCampusEvent(ctx context.Context, id uuid.UUID) (*domain.CampusEvent, error) {
	ev, err := s.events.GetCampus(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetCampusEvent: %w", err)
	}
	return ev, nil
}
