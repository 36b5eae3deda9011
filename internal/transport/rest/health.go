package rest

import (
	"context"
	"net/http"
	"time"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"

	probeTimeout = 3 * time.Second
)

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and full health probes.
// PostgreSQL is required; the barcode cache is optional and only degrades
// the report when it is configured but unreachable.
type HealthHandler struct {
	db           pinger
	cache        pinger
	version      string
	integrations map[string]bool
}

// HealthOption configures optional health components.
type HealthOption func(*HealthHandler)

// WithCache adds the Redis barcode cache as a non-critical component.
func WithCache(c pinger) HealthOption {
	return func(h *HealthHandler) { h.cache = c }
}

// WithIntegrations reports which external providers are configured.
func WithIntegrations(enabled map[string]bool) HealthOption {
	return func(h *HealthHandler) { h.integrations = enabled }
}

func NewHealthHandler(db pinger, version string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: db, version: version}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status       string                `json:"status"`
	Version      string                `json:"version,omitempty"`
	Components   map[string]CompStatus `json:"components,omitempty"`
	Integrations map[string]bool       `json:"integrations,omitempty"`
	Timestamp    time.Time             `json:"timestamp"`
}

// CompStatus is the status of a single dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is up.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 until PostgreSQL responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if comp := probe(ctx, h.db); comp.Status != statusOK {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health reports every component with latency. A down database yields 503,
// a down cache yields 200 with status "degraded".
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:       statusOK,
		Version:      h.version,
		Components:   map[string]CompStatus{"database": probe(ctx, h.db)},
		Integrations: h.integrations,
	}
	if h.cache != nil {
		resp.Components["cache"] = probe(ctx, h.cache)
		if resp.Components["cache"].Status != statusOK {
			resp.Status = statusDegraded
		}
	}

	code := http.StatusOK
	if resp.Components["database"].Status != statusOK {
		resp.Status = statusDown
		code = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now()
	writeJSON(w, code, resp)
}

func probe(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}
