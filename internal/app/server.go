package app

import (
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/trainrec-backend/internal/transport/loader"
	"github.com/heartmarshall/trainrec-backend/internal/transport/middleware"
	"github.com/heartmarshall/trainrec-backend/internal/transport/rest"
)

const rateLimitCleanup = 5 * time.Minute

// newHTTPServer mounts the REST handlers behind the global middleware chain.
// The returned stop function releases the login rate limiter.
func newHTTPServer(c *Container) (*http.Server, func()) {
	cfg := c.Config
	logger := c.Logger

	limiter := middleware.NewRateLimiter(rateLimitCleanup)

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(c.Pool, BuildVersion()).WithCheck("storage", c.Files),
		CAS:        rest.NewCASHandler(c.Auth, cfg.Auth, cfg.CAS, logger, c.Reporter),
		Catalog:    rest.NewCatalogHandler(c.Users, c.Catalog, logger, c.Reporter),
		Records:    rest.NewRecordHandler(c.Records, cfg.Records.MaxAttachmentBytes, logger, c.Reporter),
		Links:      rest.NewLinkHandler(c.Links, logger, c.Reporter),
		LoginLimit: limiter.Limit(cfg.Server.LoginRateLimit),
		Loaders:    loader.Middleware(c.UserRepo),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = c.Metrics.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
	}

	// Metrics sits directly in front of the mux so that it sees the matched pattern.
	handler := middleware.Chain(
		middleware.Recovery(logger, c.Reporter),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(c.JWT, c.UserRepo, middleware.TokenSource{
			HeaderPrefix: cfg.Auth.HeaderPrefix,
			CookieName:   cfg.Auth.CookieName,
		}),
		middleware.Logger(logger),
		middleware.Metrics(c.Metrics),
	)(rest.NewRouter(handlers))

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	return srv, limiter.Stop
}
