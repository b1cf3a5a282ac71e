// Package metrics provides Prometheus metrics for the scorecard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager manages all Prometheus metrics for the scorecard service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// Recompute pipeline
	recomputesTotal   prometheus.Counter
	recomputesStale   prometheus.Counter
	editsCoalesced    prometheus.Counter
	recomputeDuration prometheus.Histogram

	// Collaborators
	upstreamErrors  *prometheus.CounterVec
	upstreamLatency prometheus.Histogram
	rendersTotal    prometheus.Counter
	renderErrors    prometheus.Counter
	lastRenderUnix  prometheus.Gauge

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// defaultManager is the shared instance backing the package-level helpers.
var defaultManager *Manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	defaultManager = NewManager()
}

// NewManager creates a metrics manager and registers all collectors on its
// own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "scorecard",
		subsystem:        "service",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
	}
}

func (m *Manager) histogramOpts(name, help string) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   m.histogramBuckets,
	}
}

func (m *Manager) initializeMetrics() {
	m.recomputesTotal = prometheus.NewCounter(m.counterOpts("recomputes_total", "Completed card recomputes."))
	m.recomputesStale = prometheus.NewCounter(m.counterOpts("recomputes_stale_total", "Recomputes discarded because a newer edit superseded them."))
	m.editsCoalesced = prometheus.NewCounter(m.counterOpts("edits_coalesced_total", "Edit events absorbed into a pending recompute."))
	m.recomputeDuration = prometheus.NewHistogram(m.histogramOpts("recompute_duration_ms", "Recompute latency in milliseconds."))

	m.upstreamErrors = prometheus.NewCounterVec(m.counterOpts("upstream_errors_total", "Upstream fetch failures."), []string{"operation", "kind"})
	m.upstreamLatency = prometheus.NewHistogram(m.histogramOpts("upstream_latency_ms", "Upstream fetch latency in milliseconds."))
	m.rendersTotal = prometheus.NewCounter(m.counterOpts("renders_total", "Cards exported as images."))
	m.renderErrors = prometheus.NewCounter(m.counterOpts("render_errors_total", "Failed export attempts."))
	m.lastRenderUnix = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_render_unix",
		Help:      "Unix time of the most recent successful render.",
	})

	m.httpRequests = prometheus.NewCounterVec(m.counterOpts("http_requests_total", "HTTP requests by endpoint, method, status."), []string{"endpoint", "method", "status"})
	m.httpRequestDuration = prometheus.NewHistogramVec(m.histogramOpts("http_request_duration_ms", "HTTP request latency in milliseconds."), []string{"endpoint", "method", "status"})

	m.registry.MustRegister(
		m.recomputesTotal, m.recomputesStale, m.editsCoalesced, m.recomputeDuration,
		m.upstreamErrors, m.upstreamLatency, m.rendersTotal, m.renderErrors, m.lastRenderUnix,
		m.httpRequests, m.httpRequestDuration,
	)
}

// RecordRecompute counts one completed recompute and its latency.
func RecordRecompute(latencyMs float64) {
	defaultManager.recomputesTotal.Inc()
	defaultManager.recomputeDuration.Observe(latencyMs)
}

// RecordStaleRecompute counts a recompute discarded before publishing.
func RecordStaleRecompute() {
	defaultManager.recomputesStale.Inc()
}

// RecordCoalescedEdit counts an edit folded into a pending recompute.
func RecordCoalescedEdit() {
	defaultManager.editsCoalesced.Inc()
}

// RecordUpstreamError counts a fetch failure by operation and error kind.
func RecordUpstreamError(operation, kind string) {
	defaultManager.upstreamErrors.WithLabelValues(operation, kind).Inc()
}

// RecordUpstreamLatency observes one upstream fetch latency.
func RecordUpstreamLatency(latencyMs float64) {
	defaultManager.upstreamLatency.Observe(latencyMs)
}

// RecordRender counts one successful export and stamps its time.
func RecordRender(unixTime float64) {
	defaultManager.rendersTotal.Inc()
	defaultManager.lastRenderUnix.Set(unixTime)
}

// RecordRenderError counts one failed export.
func RecordRenderError() {
	defaultManager.renderErrors.Inc()
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request latency.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	defaultManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the default manager's registry for scraping.
func GetRegistry() *prometheus.Registry {
	return defaultManager.registry
}
