package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/internal/service/catalog"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
}

type catalogService interface {
	CreateProgram(ctx context.Context, input catalog.CreateProgramInput) (*domain.Program, error)
	ListPrograms(ctx context.Context) ([]*domain.Program, error)
	CreateCampusEvent(ctx context.Context, input catalog.CreateCampusEventInput) (*domain.CampusEvent, error)
	ListCampusEvents(ctx context.Context, input catalog.ListEventsInput) ([]*domain.CampusEvent, error)
	GetCampusEvent(ctx context.Context, id uuid.UUID) (*domain.CampusEvent, error)
	Enroll(ctx context.Context, eventID uuid.UUID) (*domain.Enrollment, error)
	ListMyEnrollments(ctx context.Context) ([]*domain.Enrollment, error)
}

// CatalogHandler serves the profile, programme and campus event endpoints.
type CatalogHandler struct {
	responder
	profiles profileService
	catalog  catalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(profiles profileService, svc catalogService, logger *slog.Logger, reporter errorReporter) *CatalogHandler {
	return &CatalogHandler{
		responder: responder{log: logger.With("handler", "catalog"), reporter: reporter},
		profiles:  profiles,
		catalog:   svc,
	}
}

// Me handles GET /api/me.
func (h *CatalogHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.profiles.GetProfile(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

type createProgramRequest struct {
	Name        string  `json:"name"        validate:"notblank,max=255"`
	Description *string `json:"description" validate:"omitempty,max=4000"`
}

// CreateProgram handles POST /api/programs.
func (h *CatalogHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req createProgramRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	p, err := h.catalog.CreateProgram(r.Context(), catalog.CreateProgramInput{Name: req.Name, Description: req.Description})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProgramResponse(p))
}

// ListPrograms handles GET /api/programs.
func (h *CatalogHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.catalog.ListPrograms(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]programResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, toProgramResponse(p))
	}
	writeJSON(w, http.StatusOK, out)
}

type createCampusEventRequest struct {
	ProgramID *uuid.UUID `json:"program_id"`
	Title     string     `json:"title"     validate:"notblank,max=255"`
	Location  string     `json:"location"  validate:"max=255"`
	StartsAt  time.Time  `json:"starts_at" validate:"required"`
	EndsAt    time.Time  `json:"ends_at"   validate:"required,gtefield=StartsAt"`
	Hours     float64    `json:"hours"     validate:"gt=0"`
	Capacity  int        `json:"capacity"  validate:"gte=0"`
}

// CreateCampusEvent handles POST /api/events/campus.
func (h *CatalogHandler) CreateCampusEvent(w http.ResponseWriter, r *http.Request) {
	var req createCampusEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	ev, err := h.catalog.CreateCampusEvent(r.Context(), catalog.CreateCampusEventInput{
		ProgramID: req.ProgramID,
		Title:     req.Title,
		Location:  req.Location,
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Hours:     req.Hours,
		Capacity:  req.Capacity,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampusEventResponse(ev))
}

// ListCampusEvents handles GET /api/events/campus?program_id=&upcoming=&limit=&offset=.
func (h *CatalogHandler) ListCampusEvents(w http.ResponseWriter, r *http.Request) {
	var input catalog.ListEventsInput
	q := r.URL.Query()
	if v := q.Get("program_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			h.fail(w, r, domain.NewValidationError("program_id", "invalid id"))
			return
		}
		input.ProgramID = &id
	}
	if v := q.Get("upcoming"); v != "" {
		upcoming, err := strconv.ParseBool(v)
		if err != nil {
			h.fail(w, r, domain.NewValidationError("upcoming", "must be a boolean"))
			return
		}
		input.UpcomingOnly = upcoming
	}
	var err error
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		h.fail(w, r, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		h.fail(w, r, err)
		return
	}

	events, err := h.catalog.ListCampusEvents(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]campusEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toCampusEventResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCampusEvent handles GET /api/events/campus/{id}.
func (h *CatalogHandler) GetCampusEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ev, err := h.catalog.GetCampusEvent(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampusEventResponse(ev))
}

// Enroll handles POST /api/events/campus/{id}/enroll.
func (h *CatalogHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	e, err := h.catalog.Enroll(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEnrollmentResponse(e))
}

// ListEnrollments handles GET /api/enrollments.
func (h *CatalogHandler) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListMyEnrollments(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]enrollmentResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEnrollmentResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}
