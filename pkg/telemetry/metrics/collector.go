package metrics

import (
	"strconv"
	"time"

	"mercator-hq/callisto/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector manages the Prometheus metrics for Mercator Callisto: trace
// sampling decisions, span lifecycle counts, and proxied request totals.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	decisionsTotal  *prometheus.CounterVec
	spansStarted    prometheus.Counter
	spansFinished   prometheus.Counter
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates a metrics collector with the specified configuration
// and Prometheus registry. If registry is nil, a fresh registry is used.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = config.DefaultMetricsNamespace
	}
	if cfg.Subsystem == "" {
		cfg.Subsystem = config.DefaultMetricsSubsystem
	}

	c := &Collector{
		config:   cfg,
		registry: registry,

		decisionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "trace_decisions_total",
				Help:      "Trace sampling decisions by reason and outcome.",
			},
			[]string{"reason", "traced"},
		),
		spansStarted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "spans_started_total",
				Help:      "Spans started for traced requests.",
			},
		),
		spansFinished: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "spans_finished_total",
				Help:      "Spans finalized and handed to the tracing backend.",
			},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "requests_total",
				Help:      "Proxied requests by response status class.",
			},
			[]string{"status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Subsystem: cfg.Subsystem,
				Name:      "request_duration_seconds",
				Help:      "Proxied request duration.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		c.decisionsTotal,
		c.spansStarted,
		c.spansFinished,
		c.requestsTotal,
		c.requestDuration,
	)

	return c
}

// RecordDecision records one trace sampling decision.
// All Record methods are no-ops on a nil collector so callers need no
// metrics-enabled branching.
func (c *Collector) RecordDecision(reason string, traced bool) {
	if c == nil {
		return
	}
	c.decisionsTotal.WithLabelValues(reason, strconv.FormatBool(traced)).Inc()
}

// RecordSpanStarted records a span handed out by the driver.
func (c *Collector) RecordSpanStarted() {
	if c == nil {
		return
	}
	c.spansStarted.Inc()
}

// RecordSpanFinished records a span finalized and passed to the backend.
func (c *Collector) RecordSpanFinished() {
	if c == nil {
		return
	}
	c.spansFinished.Inc()
}

// RecordRequest records a completed proxied request.
func (c *Collector) RecordRequest(statusCode int, duration time.Duration) {
	if c == nil {
		return
	}
	status := statusClass(statusCode)
	c.requestsTotal.WithLabelValues(status).Inc()
	c.requestDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func statusClass(code int) string {
	switch {
	case code == 0:
		return "0xx"
	case code >= 100 && code < 600:
		return strconv.Itoa(code/100) + "xx"
	default:
		return "unknown"
	}
}
