package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/internal/service/shortlink"
)

type linkService interface {
	Create(ctx context.Context, input shortlink.CreateInput) (*domain.ShortLink, error)
	Resolve(ctx context.Context, code string) (*domain.ShortLink, error)
}

// LinkHandler serves short link creation and the public redirect.
type LinkHandler struct {
	responder
	svc linkService
}

// NewLinkHandler creates a LinkHandler.
func NewLinkHandler(svc linkService, logger *slog.Logger, reporter errorReporter) *LinkHandler {
	return &LinkHandler{
		responder: responder{log: logger.With("handler", "links"), reporter: reporter},
		svc:       svc,
	}
}

type createLinkRequest struct {
	TargetURL string `json:"target_url" validate:"required,url"`
	// TTLSeconds of 0 creates a link that never expires; omitted uses the default.
	TTLSeconds *int64 `json:"ttl_seconds" validate:"omitempty,gte=0"`
}

// Create handles POST /api/links.
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLinkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	input := shortlink.CreateInput{TargetURL: req.TargetURL}
	if req.TTLSeconds != nil {
		ttl := time.Duration(*req.TTLSeconds) * time.Second
		input.TTL = &ttl
	}

	link, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLinkResponse(link))
}

// Redirect handles GET /s/{code}.
func (h *LinkHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	link, err := h.svc.Resolve(r.Context(), r.PathValue("code"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, link.TargetURL, http.StatusFound)
}
