package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
	"github.com/heartmarshall/trainrec-backend/internal/service/record"
)

// multipartOverhead leaves room for part headers around the file itself.
const multipartOverhead = 64 << 10

type recordService interface {
	CreateRecord(ctx context.Context, input record.CreateRecordInput) (*domain.Record, error)
	GetRecord(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	ListMyRecords(ctx context.Context, page record.QueueInput) ([]*domain.Record, int, error)
	ListReviewQueue(ctx context.Context, page record.QueueInput) ([]*domain.Record, int, error)
	Transition(ctx context.Context, input record.TransitionInput) (*record.TransitionResult, error)
	ListStatusLogs(ctx context.Context, recordID uuid.UUID) ([]*domain.StatusChangeLog, error)
	AddReviewNote(ctx context.Context, input record.AddNoteInput) (*domain.ReviewNote, error)
	ListReviewNotes(ctx context.Context, recordID uuid.UUID) ([]*domain.ReviewNote, error)
	AddAttachment(ctx context.Context, input record.AttachmentInput, content io.Reader) (*domain.RecordAttachment, error)
	OpenAttachment(ctx context.Context, id uuid.UUID) (*domain.RecordAttachment, afero.File, error)
	ListAttachments(ctx context.Context, recordID uuid.UUID) ([]*domain.RecordAttachment, error)
}

// RecordHandler serves training records, their review trail and attachments.
type RecordHandler struct {
	responder
	svc      recordService
	maxBytes int64
}

// NewRecordHandler creates a RecordHandler. maxAttachmentBytes bounds upload bodies.
func NewRecordHandler(svc recordService, maxAttachmentBytes int64, logger *slog.Logger, reporter errorReporter) *RecordHandler {
	return &RecordHandler{
		responder: responder{log: logger.With("handler", "records"), reporter: reporter},
		svc:       svc,
		maxBytes:  maxAttachmentBytes,
	}
}

type offCampusRequest struct {
	Title     string    `json:"title"     validate:"notblank,max=255"`
	Organizer string    `json:"organizer" validate:"max=255"`
	Location  string    `json:"location"  validate:"max=255"`
	StartsAt  time.Time `json:"starts_at" validate:"required"`
	EndsAt    time.Time `json:"ends_at"   validate:"required,gtefield=StartsAt"`
	Hours     float64   `json:"hours"     validate:"gt=0"`
}

type createRecordRequest struct {
	CampusEventID *uuid.UUID        `json:"campus_event_id" validate:"required_without=OffCampus,excluded_with=OffCampus"`
	OffCampus     *offCampusRequest `json:"off_campus"`
	Content       string            `json:"content"         validate:"notblank"`
}

// Create handles POST /api/records.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	input := record.CreateRecordInput{CampusEventID: req.CampusEventID, Content: req.Content}
	if oc := req.OffCampus; oc != nil {
		input.OffCampus = &record.OffCampusInput{
			Title:     oc.Title,
			Organizer: oc.Organizer,
			Location:  oc.Location,
			StartsAt:  oc.StartsAt,
			EndsAt:    oc.EndsAt,
			Hours:     oc.Hours,
		}
	}

	rec, err := h.svc.CreateRecord(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecordResponses(r.Context(), []*domain.Record{rec})[0])
}

// Get handles GET /api/records/{id}.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rec, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponses(r.Context(), []*domain.Record{rec})[0])
}

// ListMine handles GET /api/records.
func (h *RecordHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, h.svc.ListMyRecords)
}

// ReviewQueue handles GET /api/reviews/queue.
func (h *RecordHandler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, h.svc.ListReviewQueue)
}

func (h *RecordHandler) page(w http.ResponseWriter, r *http.Request, list func(context.Context, record.QueueInput) ([]*domain.Record, int, error)) {
	var (
		in  record.QueueInput
		err error
	)
	if in.Limit, err = queryInt(r, "limit"); err != nil {
		h.fail(w, r, err)
		return
	}
	if in.Offset, err = queryInt(r, "offset"); err != nil {
		h.fail(w, r, err)
		return
	}

	recs, total, err := list(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pageResponse[recordResponse]{
		Items:  toRecordResponses(r.Context(), recs),
		Total:  total,
		Limit:  in.Limit,
		Offset: in.Offset,
	})
}

type transitionRequest struct {
	Target string  `json:"target" validate:"required"`
	Note   *string `json:"note"   validate:"omitempty,max=10000"`
}

type transitionResponse struct {
	Record recordResponse     `json:"record"`
	Log    *statusLogResponse `json:"log,omitempty"`
	Note   *noteResponse      `json:"note,omitempty"`
}

// Transition handles POST /api/records/{id}/transition.
func (h *RecordHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req transitionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.svc.Transition(r.Context(), record.TransitionInput{
		RecordID: id,
		Target:   domain.RecordStatus(req.Target),
		Note:     req.Note,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	ctx := r.Context()
	out := transitionResponse{Record: toRecordResponses(ctx, []*domain.Record{res.Record})[0]}
	if res.Log != nil {
		out.Log = &toStatusLogResponses(ctx, []*domain.StatusChangeLog{res.Log})[0]
	}
	if res.Note != nil {
		out.Note = &toNoteResponses(ctx, []*domain.ReviewNote{res.Note})[0]
	}
	writeJSON(w, http.StatusOK, out)
}

// Logs handles GET /api/records/{id}/logs.
func (h *RecordHandler) Logs(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	logs, err := h.svc.ListStatusLogs(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatusLogResponses(r.Context(), logs))
}

type noteRequest struct {
	Body string `json:"body" validate:"notblank,max=10000"`
}

// AddNote handles POST /api/records/{id}/notes.
func (h *RecordHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	note, err := h.svc.AddReviewNote(r.Context(), record.AddNoteInput{RecordID: id, Body: req.Body})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponses(r.Context(), []*domain.ReviewNote{note})[0])
}

// Notes handles GET /api/records/{id}/notes.
func (h *RecordHandler) Notes(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	notes, err := h.svc.ListReviewNotes(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponses(r.Context(), notes))
}

// Attachments handles GET /api/records/{id}/attachments.
func (h *RecordHandler) Attachments(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list, err := h.svc.ListAttachments(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]attachmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAttachmentResponse(a))
	}
	writeJSON(w, http.StatusOK, out)
}

// Upload handles POST /api/records/{id}/attachments as multipart/form-data
// with the file in the "file" part. The part is streamed to storage.
func (h *RecordHandler) Upload(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	mr, err := r.MultipartReader()
	if err != nil {
		h.fail(w, r, domain.NewValidationError("file", "multipart body required"))
		return
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			h.fail(w, r, domain.NewValidationError("file", "required"))
			return
		}
		if err != nil {
			h.uploadFailed(w, r, err)
			return
		}
		if part.FormName() != "file" {
			_ = part.Close()
			continue
		}

		ct := part.Header.Get("Content-Type")
		if mt, _, perr := mime.ParseMediaType(ct); perr == nil {
			ct = mt
		}
		att, err := h.svc.AddAttachment(r.Context(), record.AttachmentInput{
			RecordID:    id,
			FileName:    part.FileName(),
			ContentType: ct,
		}, part)
		_ = part.Close()
		if err != nil {
			h.uploadFailed(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, toAttachmentResponse(att))
		return
	}
}

func (h *RecordHandler) uploadFailed(w http.ResponseWriter, r *http.Request, err error) {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large")
		return
	}
	h.fail(w, r, err)
}

// Download handles GET /api/attachments/{id}.
func (h *RecordHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	att, f, err := h.svc.OpenAttachment(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", att.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": att.FileName}))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, att.FileName, att.CreatedAt, f)
}
