package record

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

const (
	maxTitleLength    = 255
	maxNoteLength     = 10000
	maxFileNameLength = 255
	maxEventHours     = 1000
)

// OffCampusInput describes an externally organised training reported
// together with a new record.
type OffCampusInput struct {
	Title     string
	Organizer string
	Location  string
	StartsAt  time.Time
	EndsAt    time.Time
	Hours     float64
}

func (i *OffCampusInput) validate() []domain.FieldError {
	var errs []domain.FieldError
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "off_campus.title", Message: "required"})
	} else if len(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "off_campus.title", Message: "too long"})
	}
	if i.StartsAt.IsZero() || i.EndsAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "off_campus.starts_at", Message: "start and end are required"})
	} else if i.EndsAt.Before(i.StartsAt) {
		errs = append(errs, domain.FieldError{Field: "off_campus.ends_at", Message: "must not be before start"})
	}
	if i.Hours <= 0 || i.Hours > maxEventHours {
		errs = append(errs, domain.FieldError{Field: "off_campus.hours", Message: "out of range"})
	}
	return errs
}

// CreateRecordInput holds parameters for submitting a training record.
// Exactly one of CampusEventID and OffCampus must be set.
type CreateRecordInput struct {
	CampusEventID *uuid.UUID
	OffCampus     *OffCampusInput
	Content       string
}

// Validate validates the create record input against the configured content limit.
func (i CreateRecordInput) Validate(maxContent int) error {
	var errs []domain.FieldError

	switch {
	case i.CampusEventID == nil && i.OffCampus == nil:
		errs = append(errs, domain.FieldError{Field: "event", Message: "campus_event_id or off_campus is required"})
	case i.CampusEventID != nil && i.OffCampus != nil:
		errs = append(errs, domain.FieldError{Field: "event", Message: "only one of campus_event_id and off_campus may be set"})
	case i.OffCampus != nil:
		errs = append(errs, i.OffCampus.validate()...)
	}

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if maxContent > 0 && len(i.Content) > maxContent {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// TransitionInput holds parameters for moving a record to its next status.
type TransitionInput struct {
	RecordID uuid.UUID
	Target   domain.RecordStatus
	Note     *string
}

// Validate validates the transition input.
func (i TransitionInput) Validate() error {
	var errs []domain.FieldError
	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	if !i.Target.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target", Message: "invalid status"})
	}
	if i.Note != nil && len(*i.Note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddNoteInput holds parameters for a reviewer comment.
type AddNoteInput struct {
	RecordID uuid.UUID
	Body     string
}

// Validate validates the add note input.
func (i AddNoteInput) Validate() error {
	body := strings.TrimSpace(i.Body)
	switch {
	case body == "":
		return domain.NewValidationError("body", "required")
	case len(body) > maxNoteLength:
		return domain.NewValidationError("body", "too long")
	}
	return nil
}

// QueueInput holds paging parameters for the review queue.
type QueueInput struct {
	Limit  int
	Offset int
}

// AttachmentInput describes an uploaded evidence file.
type AttachmentInput struct {
	RecordID    uuid.UUID
	FileName    string
	ContentType string
	Size        int64
}

func (i AttachmentInput) validate(allowed []string, maxBytes int64) error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.FileName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	} else if len(name) > maxFileNameLength {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "too long"})
	}

	ct := normalizeContentType(i.ContentType)
	ok := false
	for _, a := range allowed {
		if a == ct {
			ok = true
			break
		}
	}
	if !ok {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "not allowed"})
	}

	if i.Size > maxBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: "too large"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// normalizeContentType drops parameters such as charset and lowercases the media type.
func normalizeContentType(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
