package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/trainrec-backend/internal/config"
	"github.com/heartmarshall/trainrec-backend/internal/scheduler"
)

// Run is the server entry point. It loads configuration, builds the
// dependency graph, and serves HTTP and scheduled jobs until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	return serve(ctx, c)
}

// serve runs the HTTP server and, when enabled, the scheduler until ctx is
// cancelled. Nothing is started if the scheduler cannot be built.
func serve(ctx context.Context, c *Container) error {
	cfg, logger := c.Config, c.Logger

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		var err error
		if sched, err = NewScheduler(c); err != nil {
			return err
		}
	}

	srv, stopLimiter := newHTTPServer(c)
	defer stopLimiter()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if sched != nil {
		g.Go(func() error { return sched.Run(gctx) })
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// PurgeLinksJob is the name of the short link maintenance job.
const PurgeLinksJob = "purge_expired_links"

// PurgeExpiredLinks deletes expired short links and logs how many went.
func PurgeExpiredLinks(c *Container) scheduler.Job {
	return func(ctx context.Context) error {
		n, err := c.Links.PurgeExpired(ctx)
		if err != nil {
			return err
		}
		c.Logger.InfoContext(ctx, "expired short links purged", slog.Int64("deleted", n))
		return nil
	}
}

// NewScheduler registers the maintenance jobs on a cron scheduler.
func NewScheduler(c *Container) (*scheduler.Scheduler, error) {
	s := scheduler.New(c.Logger, c.Metrics, c.Config.Scheduler.JobTimeout)
	if err := s.Add(PurgeLinksJob, c.Config.Scheduler.PurgeLinksSpec, PurgeExpiredLinks(c)); err != nil {
		return nil, err
	}
	return s, nil
}
