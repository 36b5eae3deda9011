// Package metrics owns the Prometheus registry and the collectors the application records into.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "freshkeep"

// Metrics groups every collector. The zero value is not usable, call New.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	rollupEvents         *prometheus.CounterVec
	achievementsUnlocked *prometheus.CounterVec

	jobRuns     *prometheus.CounterVec
	jobDuration *prometheus.HistogramVec

	wsConnections prometheus.Gauge
}

// New creates a private registry with process and Go runtime collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "http", Name: "inflight_requests",
			Help: "Current number of in-flight HTTP requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "Total number of HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
		rollupEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "analytics", Name: "rollup_events_total",
			Help: "Consumption and waste events folded into daily aggregates.",
		}, []string{"kind"}),
		achievementsUnlocked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "analytics", Name: "achievements_unlocked_total",
			Help: "Achievements unlocked, by achievement id.",
		}, []string{"achievement"}),
		jobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "worker", Name: "job_runs_total",
			Help: "Background job runs.",
		}, []string{"job", "success"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "worker", Name: "job_run_duration_seconds",
			Help:    "Duration of background job runs.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"job"}),
		wsConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "ws", Name: "connections",
			Help: "Open notification websocket connections.",
		}),
	}

	m.registry.MustRegister(
		m.httpInFlight, m.httpRequests, m.httpDuration,
		m.rollupEvents, m.achievementsUnlocked,
		m.jobRuns, m.jobDuration,
		m.wsConnections,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry, for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestStarted increments the in-flight gauge and returns a func that records completion.
func (m *Metrics) RequestStarted() func(method, route string, status int, d time.Duration) {
	m.httpInFlight.Inc()
	return func(method, route string, status int, d time.Duration) {
		m.httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
	}
}

// RollupEvent counts a consumption or waste event.
func (m *Metrics) RollupEvent(kind string) {
	m.rollupEvents.WithLabelValues(kind).Inc()
}

// AchievementUnlocked counts a new unlock.
func (m *Metrics) AchievementUnlocked(id string) {
	m.achievementsUnlocked.WithLabelValues(id).Inc()
}

// JobRun records one background job execution.
func (m *Metrics) JobRun(job string, d time.Duration, err error) {
	if d <= 0 {
		d = time.Millisecond
	}
	m.jobRuns.WithLabelValues(job, strconv.FormatBool(err == nil)).Inc()
	m.jobDuration.WithLabelValues(job).Observe(d.Seconds())
}

// WSConnected adjusts the open connection gauge by delta.
func (m *Metrics) WSConnected(delta int) {
	m.wsConnections.Add(float64(delta))
}
