package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// errorReporter ships unexpected errors to an external tracker.
type errorReporter interface {
	Report(ctx context.Context, err error, extras map[string]any)
}

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, reports it and responds with 500 Internal Server Error.
func Recovery(logger *slog.Logger, reporter errorReporter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(stack)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if reporter != nil {
					reporter.Report(r.Context(), fmt.Errorf("panic: %v", rec), map[string]any{
						"method": r.Method,
						"path":   r.URL.Path,
					})
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
