package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

// errorReporter forwards unexpected failures to an external tracker.
type errorReporter interface {
	Report(ctx context.Context, err error, extras map[string]any)
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// responder maps service errors onto HTTP responses.
type responder struct {
	log      *slog.Logger
	reporter errorReporter
}

func (p responder) fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *domain.ValidationError
		te *domain.TransitionError
	)
	switch {
	case errors.As(err, &ve):
		fields := make(map[string]string, len(ve.Errors))
		for _, fe := range ve.Errors {
			if _, ok := fields[fe.Field]; !ok {
				fields[fe.Field] = fe.Message
			}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &te):
		writeError(w, http.StatusConflict, te.Error())
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		p.log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
		if p.reporter != nil {
			p.reporter.Report(r.Context(), err, map[string]any{"method": r.Method, "path": r.URL.Path})
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
