// Package metrics owns the Prometheus registry and the application's collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/trainrec-backend/internal/domain"
)

const namespace = "trainrec"

// DefaultPath is the default HTTP path for the scrape endpoint.
const DefaultPath = "/metrics"

// Metrics holds the application collectors registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	logins       *prometheus.CounterVec
	transitions  *prometheus.CounterVec
	linkHits     prometheus.Counter
	jobRuns      *prometheus.CounterVec
}

// New creates the collectors and registers them together with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "cas_logins_total",
			Help:      "CAS login attempts by outcome.",
		}, []string{"outcome"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "records",
			Name:      "status_transitions_total",
			Help:      "Committed record status transitions.",
		}, []string{"from", "to"}),
		linkHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "links",
			Name:      "resolved_total",
			Help:      "Short links resolved.",
		}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "job_runs_total",
			Help:      "Maintenance job runs by job and result.",
		}, []string{"job", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.logins,
		m.transitions,
		m.linkHits,
		m.jobRuns,
	)
	return m
}

// Handler returns the scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// LoginOutcome records the result of a CAS login attempt. outcome is "success"
// or a failure reason.
func (m *Metrics) LoginOutcome(outcome string) {
	m.logins.WithLabelValues(outcome).Inc()
}

// TransitionCommitted records a committed status change.
func (m *Metrics) TransitionCommitted(from, to domain.RecordStatus) {
	m.transitions.WithLabelValues(from.String(), to.String()).Inc()
}

// LinkResolved records a short link redirect.
func (m *Metrics) LinkResolved() {
	m.linkHits.Inc()
}

// JobRun records a scheduler job execution.
func (m *Metrics) JobRun(job string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.jobRuns.WithLabelValues(job, result).Inc()
}
