package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/trainrec-backend/internal/adapter/notify"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/attachment"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/enrollment"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/event"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/program"
	recordrepo "github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/review"
	shortlinkrepo "github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/shortlink"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/statuslog"
	userrepo "github.com/heartmarshall/trainrec-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/provider/cas"
	"github.com/heartmarshall/trainrec-backend/internal/adapter/storage"
	"github.com/heartmarshall/trainrec-backend/internal/auth"
	"github.com/heartmarshall/trainrec-backend/internal/config"
	"github.com/heartmarshall/trainrec-backend/internal/metrics"
	authsvc "github.com/heartmarshall/trainrec-backend/internal/service/auth"
	"github.com/heartmarshall/trainrec-backend/internal/service/catalog"
	"github.com/heartmarshall/trainrec-backend/internal/service/record"
	"github.com/heartmarshall/trainrec-backend/internal/service/shortlink"
	usersvc "github.com/heartmarshall/trainrec-backend/internal/service/user"
)

// Container holds the dependencies shared by the server and the admin CLI.
type Container struct {
	Config   *config.Config
	Logger   *slog.Logger
	Reporter ErrorReporter
	Pool     *pgxpool.Pool
	Files    *storage.Store
	Metrics  *metrics.Metrics
	JWT      *auth.JWTManager
	UserRepo *userrepo.Repo

	Auth    *authsvc.Service
	Users   *usersvc.Service
	Catalog *catalog.Service
	Records *record.Service
	Links   *shortlink.Service
}

// Build connects to the database and wires repositories into services.
// The caller must Close the container.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	files, err := storage.New(cfg.Storage)
	if err != nil {
		pool.Close()
		return nil, err
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Reporter: NewErrorReporter(cfg.Errors, logger),
		Pool:     pool,
		Files:    files,
		// Collected even when exposition is disabled so services always get a recorder.
		Metrics:  metrics.New(),
		JWT:      auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		UserRepo: userrepo.New(pool),
	}

	tx := postgres.NewTxManager(pool)
	events := event.New(pool)
	enrollments := enrollment.New(pool)
	links := shortlinkrepo.New(pool)

	c.Auth = authsvc.NewService(logger, c.UserRepo, cas.NewVerifier(cfg.CAS, logger), c.JWT, c.Metrics)
	c.Users = usersvc.NewService(logger, c.UserRepo)
	c.Catalog = catalog.NewService(logger, program.New(pool), events, enrollments, tx)
	c.Records = record.NewService(logger, record.Deps{
		Records:     recordrepo.New(pool),
		Logs:        statuslog.New(pool),
		Notes:       review.New(pool),
		Attachments: attachment.New(pool),
		Users:       c.UserRepo,
		Events:      events,
		Enrollments: enrollments,
		Tx:          tx,
		Files:       files,
		Notifier:    notify.NewNotifier(notify.NewSender(cfg.Mail, logger), logger),
		Metrics:     c.Metrics,
	}, cfg.Records)
	c.Links = shortlink.NewService(logger, links, c.Metrics, cfg.Records.ShortLinkTTL)

	return c, nil
}

// Close releases the database pool and flushes the error reporter.
func (c *Container) Close() {
	c.Pool.Close()
	c.Reporter.Close()
}
