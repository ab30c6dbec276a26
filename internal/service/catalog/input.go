package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// CreateProgramInput holds parameters for creating a programme.
type CreateProgramInput struct {
	Name        string
	Description *string
}

// Validate validates the create program input.
func (i CreateProgramInput) Validate() error {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return domain.NewValidationError("name", "required")
	}
	if len(name) > 255 {
		return domain.NewValidationError("name", "too long")
	}
	return nil
}

// CreateCampusEventInput holds parameters for scheduling a campus event.
type CreateCampusEventInput struct {
	ProgramID *uuid.UUID
	Title     string
	Location  string
	StartsAt  time.Time
	EndsAt    time.Time
	Hours     float64
	Capacity  int
}

// Validate validates the create campus event input.
func (i CreateCampusEventInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if i.StartsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "starts_at", Message: "required"})
	}
	if i.EndsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "ends_at", Message: "required"})
	} else if i.EndsAt.Before(i.StartsAt) {
		errs = append(errs, domain.FieldError{Field: "ends_at", Message: "must not be before start"})
	}
	if i.Hours <= 0 {
		errs = append(errs, domain.FieldError{Field: "hours", Message: "must be positive"})
	}
	if i.Capacity < 0 {
		errs = append(errs, domain.FieldError{Field: "capacity", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListEventsInput holds filters for listing campus events.
type ListEventsInput struct {
	ProgramID    *uuid.UUID
	UpcomingOnly bool
	Limit        int
	Offset       int
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	}
	return limit
}
