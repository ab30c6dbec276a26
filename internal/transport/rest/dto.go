package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/internal/transport/loader"
)

type userResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Department  string     `json:"department"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	if u == nil {
		return userResponse{}
	}
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Name:        u.Name,
		Department:  u.Department,
		Role:        u.Role.String(),
		LastLoginAt: u.LastLoginAt,
	}
}

// personRef is the short form of a user embedded in other responses.
type personRef struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username,omitempty"`
	Name       string    `json:"name,omitempty"`
	Department string    `json:"department,omitempty"`
}

func toPersonRef(id uuid.UUID, users map[uuid.UUID]*domain.User) personRef {
	ref := personRef{ID: id}
	if u, ok := users[id]; ok {
		ref.Username = u.Username
		ref.Name = u.Name
		ref.Department = u.Department
	}
	return ref
}

// loadUsers resolves ids through the request loader. Without a loader, or
// when the lookup fails, references carry only ids.
func loadUsers(ctx context.Context, ids []uuid.UUID) map[uuid.UUID]*domain.User {
	l := loader.FromContext(ctx)
	if l == nil {
		return nil
	}
	users, err := l.UsersByID(ctx, ids)
	if err != nil {
		return nil
	}
	return users
}

type programResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProgramResponse(p *domain.Program) programResponse {
	return programResponse{ID: p.ID, Name: p.Name, Description: p.Description, CreatedAt: p.CreatedAt}
}

type campusEventResponse struct {
	ID        uuid.UUID  `json:"id"`
	ProgramID *uuid.UUID `json:"program_id,omitempty"`
	Title     string     `json:"title"`
	Location  string     `json:"location"`
	StartsAt  time.Time  `json:"starts_at"`
	EndsAt    time.Time  `json:"ends_at"`
	Hours     float64    `json:"hours"`
	Capacity  int        `json:"capacity"`
	CreatedAt time.Time  `json:"created_at"`
}

func toCampusEventResponse(e *domain.CampusEvent) campusEventResponse {
	return campusEventResponse{
		ID:        e.ID,
		ProgramID: e.ProgramID,
		Title:     e.Title,
		Location:  e.Location,
		StartsAt:  e.StartsAt,
		EndsAt:    e.EndsAt,
		Hours:     e.Hours,
		Capacity:  e.Capacity,
		CreatedAt: e.CreatedAt,
	}
}

type enrollmentResponse struct {
	ID            uuid.UUID `json:"id"`
	CampusEventID uuid.UUID `json:"campus_event_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func toEnrollmentResponse(e *domain.Enrollment) enrollmentResponse {
	return enrollmentResponse{ID: e.ID, CampusEventID: e.CampusEventID, CreatedAt: e.CreatedAt}
}

type recordResponse struct {
	ID               uuid.UUID  `json:"id"`
	Owner            personRef  `json:"owner"`
	CampusEventID    *uuid.UUID `json:"campus_event_id,omitempty"`
	OffCampusEventID *uuid.UUID `json:"off_campus_event_id,omitempty"`
	Content          string     `json:"content"`
	Status           string     `json:"status"`
	Version          int        `json:"version"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func toRecordResponse(r *domain.Record, users map[uuid.UUID]*domain.User) recordResponse {
	return recordResponse{
		ID:               r.ID,
		Owner:            toPersonRef(r.UserID, users),
		CampusEventID:    r.CampusEventID,
		OffCampusEventID: r.OffCampusEventID,
		Content:          r.Content,
		Status:           r.Status.String(),
		Version:          r.Version,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func toRecordResponses(ctx context.Context, recs []*domain.Record) []recordResponse {
	ids := make([]uuid.UUID, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.UserID)
	}
	users := loadUsers(ctx, ids)

	out := make([]recordResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, toRecordResponse(r, users))
	}
	return out
}

type pageResponse[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type statusLogResponse struct {
	ID             uuid.UUID `json:"id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	Actor          personRef `json:"actor"`
	CreatedAt      time.Time `json:"created_at"`
}

func toStatusLogResponses(ctx context.Context, logs []*domain.StatusChangeLog) []statusLogResponse {
	ids := make([]uuid.UUID, 0, len(logs))
	for _, l := range logs {
		ids = append(ids, l.ActorID)
	}
	users := loadUsers(ctx, ids)

	out := make([]statusLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, statusLogResponse{
			ID:             l.ID,
			PreviousStatus: l.PreviousStatus.String(),
			NewStatus:      l.NewStatus.String(),
			Actor:          toPersonRef(l.ActorID, users),
			CreatedAt:      l.CreatedAt,
		})
	}
	return out
}

type noteResponse struct {
	ID        uuid.UUID `json:"id"`
	Reviewer  personRef `json:"reviewer"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func toNoteResponses(ctx context.Context, notes []*domain.ReviewNote) []noteResponse {
	ids := make([]uuid.UUID, 0, len(notes))
	for _, n := range notes {
		ids = append(ids, n.ReviewerID)
	}
	users := loadUsers(ctx, ids)

	out := make([]noteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteResponse{
			ID:        n.ID,
			Reviewer:  toPersonRef(n.ReviewerID, users),
			Body:      n.Body,
			CreatedAt: n.CreatedAt,
		})
	}
	return out
}

type attachmentResponse struct {
	ID          uuid.UUID `json:"id"`
	RecordID    uuid.UUID `json:"record_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAttachmentResponse(a *domain.RecordAttachment) attachmentResponse {
	return attachmentResponse{
		ID:          a.ID,
		RecordID:    a.RecordID,
		FileName:    a.FileName,
		ContentType: a.ContentType,
		SizeBytes:   a.SizeBytes,
		CreatedAt:   a.CreatedAt,
	}
}

type linkResponse struct {
	Code      string     `json:"code"`
	TargetURL string     `json:"target_url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func toLinkResponse(l *domain.ShortLink) linkResponse {
	return linkResponse{Code: l.Code, TargetURL: l.TargetURL, ExpiresAt: l.ExpiresAt, CreatedAt: l.CreatedAt}
}
