package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record is one training participation entry. Exactly one of CampusEventID
// and OffCampusEventID is set.
type Record struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CampusEventID    *uuid.UUID
	OffCampusEventID *uuid.UUID
	Content          string
	Status           RecordStatus
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasSingleEvent reports whether exactly one event reference is set.
func (r *Record) HasSingleEvent() bool {
	return (r.CampusEventID != nil) != (r.OffCampusEventID != nil)
}

// RecordAttachment is a file uploaded as evidence for a record.
type RecordAttachment struct {
	ID          uuid.UUID
	RecordID    uuid.UUID
	FileName    string
	ContentType string
	SizeBytes   int64
	StorageKey  string
	CreatedAt   time.Time
}

// StatusChangeLog is an append-only audit entry written for every transition.
type StatusChangeLog struct {
	ID             uuid.UUID
	RecordID       uuid.UUID
	PreviousStatus RecordStatus
	NewStatus      RecordStatus
	ActorID        uuid.UUID
	CreatedAt      time.Time
}

// ReviewNote is a reviewer comment attached to a record.
type ReviewNote struct {
	ID         uuid.UUID
	RecordID   uuid.UUID
	ReviewerID uuid.UUID
	Body       string
	CreatedAt  time.Time
}

// RecordFilter narrows record listings.
type RecordFilter struct {
	Statuses    []RecordStatus
	Department  *string
	ExcludeUser *uuid.UUID
	UserID      *uuid.UUID
	Limit       int
	Offset      int
}
