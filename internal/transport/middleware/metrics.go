package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	RequestStarted() func(method, route string, status int, d time.Duration)
}

// Metrics records in-flight requests, counts and latency per route. routeOf
// maps a request to its registered pattern so label cardinality stays bounded.
func Metrics(rec requestRecorder, routeOf func(r *http.Request) string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			done := rec.RequestStarted()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			done(r.Method, routeOf(r), sw.status, time.Since(start))
		})
	}
}
