package rest

import (
	"context"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

// pinger is implemented by every dependency probed by the health endpoints.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthCheck struct {
	name string
	p    pinger
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []healthCheck
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler that probes db as "database".
func NewHealthHandler(db pinger, version string) *HealthHandler {
	return &HealthHandler{
		checks:  []healthCheck{{name: "database", p: db}},
		version: version,
		now:     time.Now,
	}
}

// WithCheck adds another named dependency to the readiness probes.
func (h *HealthHandler) WithCheck(name string, p pinger) *HealthHandler {
	h.checks = append(h.checks, healthCheck{name: name, p: p})
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Ready is the readiness probe: 200 when every dependency answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.probe(r.Context())
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health is the full health check with per-component latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.probe(r.Context())

	status, overall := http.StatusOK, "ok"
	if !ok {
		status, overall = http.StatusServiceUnavailable, "down"
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) probe(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks))
	ok := true
	for _, c := range h.checks {
		start := time.Now()
		if err := c.p.Ping(ctx); err != nil {
			components[c.name] = CompStatus{Status: "down"}
			ok = false
			continue
		}
		components[c.name] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}
	return components, ok
}
