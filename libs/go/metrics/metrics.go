// Package metrics exposes the Prometheus collectors of the donation API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rescuedao"

// Metrics owns a registry and the collectors recorded by services.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	operations       *prometheus.CounterVec
	inFlight         prometheus.Gauge
	operationLatency *prometheus.HistogramVec
	roleRefreshes    *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New builds a Metrics instance with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "orchestrator",
				Name:      "operations_total",
				Help:      "Total number of finished orchestrator operations.",
			},
			[]string{"kind", "mode", "status"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "orchestrator",
				Name:      "operations_in_flight",
				Help:      "Operations submitted but not yet confirmed or failed.",
			},
		),
		operationLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "orchestrator",
				Name:      "operation_duration_seconds",
				Help:      "Time from submission to a terminal status.",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"kind", "mode"},
		),
		roleRefreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "roles",
				Name:      "refreshes_total",
				Help:      "Role store snapshot refreshes by trigger.",
			},
			[]string{"trigger", "changed"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests handled.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
			},
			[]string{"method", "path"},
		),
	}

	m.registry.MustRegister(
		m.operations,
		m.inFlight,
		m.operationLatency,
		m.roleRefreshes,
		m.httpRequests,
		m.httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// OperationStarted marks an operation as in flight.
func (m *Metrics) OperationStarted() {
	if m == nil {
		return
	}
	m.inFlight.Inc()
}

// OperationFinished records the terminal status of an operation.
func (m *Metrics) OperationFinished(kind, mode, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.inFlight.Dec()
	m.operations.WithLabelValues(kind, mode, status).Inc()
	m.operationLatency.WithLabelValues(kind, mode).Observe(elapsed.Seconds())
}

// RoleRefresh counts a role store refresh.
func (m *Metrics) RoleRefresh(trigger string, changed bool) {
	if m == nil {
		return
	}
	m.roleRefreshes.WithLabelValues(trigger, strconv.FormatBool(changed)).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request counts and latency by route template.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
