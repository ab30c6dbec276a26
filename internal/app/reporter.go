package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/rollbar/rollbar-go"

	"github.com/heartmarshall/trainrec-backend/internal/config"
	"github.com/heartmarshall/trainrec-backend/pkg/ctxutil"
)

// ErrorReporter ships unexpected errors to an external tracker.
type ErrorReporter interface {
	Report(ctx context.Context, err error, extras map[string]any)
	Close()
}

// NewErrorReporter returns a Rollbar-backed reporter when a token is
// configured and a no-op reporter otherwise.
func NewErrorReporter(cfg config.ErrorsConfig, logger *slog.Logger) ErrorReporter {
	if cfg.RollbarToken == "" {
		logger.Info("error reporting disabled")
		return nopReporter{}
	}

	host, _ := os.Hostname()
	client := rollbar.New(cfg.RollbarToken, cfg.Environment, Version, host, "")

	logger.Info("error reporting enabled", slog.String("environment", cfg.Environment))

	return &rollbarReporter{client: client}
}

type rollbarReporter struct {
	client *rollbar.Client
}

func (r *rollbarReporter) Report(ctx context.Context, err error, extras map[string]any) {
	if err == nil {
		return
	}
	if extras == nil {
		extras = map[string]any{}
	}
	if reqID := ctxutil.RequestIDFromCtx(ctx); reqID != "" {
		extras["request_id"] = reqID
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		ctx = rollbar.NewPersonContext(ctx, &rollbar.Person{Id: userID.String()})
	}

	r.client.ErrorWithExtrasAndContext(ctx, rollbar.ERR, err, extras)
}

// Close flushes queued items.
func (r *rollbarReporter) Close() {
	r.client.Wait()
	_ = r.client.Close()
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, error, map[string]any) {}
func (nopReporter) Close()                                        {}
