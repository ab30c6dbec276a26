package domain

import (
	"time"

	"github.com/google/uuid"
)

// Program groups campus events under a named training programme.
type Program struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
}

// CampusEvent is a training session organised by the school.
type CampusEvent struct {
	ID        uuid.UUID
	ProgramID *uuid.UUID
	Title     string
	Location  string
	StartsAt  time.Time
	EndsAt    time.Time
	Hours     float64
	Capacity  int // 0 = unlimited
	CreatedAt time.Time
}

// HasCapacity reports whether another enrollment fits given the current count.
func (e *CampusEvent) HasCapacity(enrolled int) bool {
	return e.Capacity == 0 || enrolled < e.Capacity
}

// OffCampusEvent is an externally organised training reported by a teacher.
type OffCampusEvent struct {
	ID        uuid.UUID
	Title     string
	Organizer string
	Location  string
	StartsAt  time.Time
	EndsAt    time.Time
	Hours     float64
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// Enrollment registers a user for a campus event.
type Enrollment struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CampusEventID uuid.UUID
	CreatedAt     time.Time
}

// CampusEventFilter narrows campus event listings.
type CampusEventFilter struct {
	ProgramID *uuid.UUID
	From      *time.Time
	Limit     int
	Offset    int
}
