package rest

import (
	"net/http"

	"github.com/heartmarshall/trainrec-backend/internal/transport/middleware"
)

// Handlers groups everything mounted by NewRouter. Metrics, LoginLimit and
// Loaders are optional.
type Handlers struct {
	Health  *HealthHandler
	CAS     *CASHandler
	Catalog *CatalogHandler
	Records *RecordHandler
	Links   *LinkHandler

	Metrics     http.Handler
	MetricsPath string

	// LoginLimit throttles /cas/login per client.
	LoginLimit middleware.Middleware
	// Loaders attaches per-request batch loaders to /api routes.
	Loaders middleware.Middleware
}

// NewRouter builds the HTTP routing table. Every /api route requires an
// authenticated user.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil && h.MetricsPath != "" {
		mux.Handle("GET "+h.MetricsPath, h.Metrics)
	}

	// Any method reaches Login so that it can answer 405 itself.
	mux.Handle("/cas/login", middleware.Chain(h.LoginLimit)(http.HandlerFunc(h.CAS.Login)))
	mux.HandleFunc("GET /cas/logout", h.CAS.Logout)
	mux.HandleFunc("GET /s/{code}", h.Links.Redirect)

	api := middleware.Chain(middleware.RequireUser, h.Loaders)
	handle := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, api(fn))
	}

	handle("GET /api/me", h.Catalog.Me)
	handle("GET /api/programs", h.Catalog.ListPrograms)
	handle("POST /api/programs", h.Catalog.CreateProgram)
	handle("GET /api/events/campus", h.Catalog.ListCampusEvents)
	handle("POST /api/events/campus", h.Catalog.CreateCampusEvent)
	handle("GET /api/events/campus/{id}", h.Catalog.GetCampusEvent)
	handle("POST /api/events/campus/{id}/enroll", h.Catalog.Enroll)
	handle("GET /api/enrollments", h.Catalog.ListEnrollments)

	handle("GET /api/records", h.Records.ListMine)
	handle("POST /api/records", h.Records.Create)
	handle("GET /api/records/{id}", h.Records.Get)
	handle("POST /api/records/{id}/transition", h.Records.Transition)
	handle("GET /api/records/{id}/logs", h.Records.Logs)
	handle("GET /api/records/{id}/notes", h.Records.Notes)
	handle("POST /api/records/{id}/notes", h.Records.AddNote)
	handle("GET /api/records/{id}/attachments", h.Records.Attachments)
	handle("POST /api/records/{id}/attachments", h.Records.Upload)
	handle("GET /api/attachments/{id}", h.Records.Download)
	handle("GET /api/reviews/queue", h.Records.ReviewQueue)

	handle("POST /api/links", h.Links.Create)

	return mux
}
