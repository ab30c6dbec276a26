package middleware

import (
	"net/http"
	"time"
)

// httpRecorder observes served requests.
type httpRecorder interface {
	ObserveHTTP(method, route string, code int, d time.Duration)
}

// Metrics records request counts and latency per route pattern. Unmatched
// requests are grouped under "unmatched" to keep label cardinality bounded.
func Metrics(rec httpRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
