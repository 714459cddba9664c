// Package metrics provides Prometheus metrics for the devroast tool server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the tool server.
type Manager struct {
	namespace string
	subsystem string
	registry  prometheus.Registerer

	// Tool call metrics
	toolCalls        *prometheus.CounterVec
	toolCallDuration *prometheus.HistogramVec

	// Upstream fetch metrics
	upstreamErrors *prometheus.CounterVec

	// HTTP transport metrics
	httpRequests *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(customRegistry)
}

// NewManager creates a metrics manager registered on the given registry.
func NewManager(registry prometheus.Registerer) *Manager {
	m := &Manager{
		namespace: "devroast",
		subsystem: "server",
		registry:  registry,
	}

	auto := promauto.With(m.registry)

	m.toolCalls = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tool_calls_total",
			Help:      "Total number of tool invocations by tool name and outcome",
		},
		[]string{"tool", "status"},
	)

	m.toolCallDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tool_call_duration_milliseconds",
			Help:      "Tool invocation duration in milliseconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"tool"},
	)

	m.upstreamErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "upstream_errors_total",
			Help:      "Total number of upstream fetch failures by source platform",
		},
		[]string{"source"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint, method, and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	return m
}

// RecordToolCall increments the tool call counter for the given outcome.
func RecordToolCall(tool, status string) {
	globalManager.toolCalls.WithLabelValues(tool, status).Inc()
}

// RecordToolCallDuration records how long a tool invocation took.
func RecordToolCallDuration(tool string, durationMs float64) {
	globalManager.toolCallDuration.WithLabelValues(tool).Observe(durationMs)
}

// RecordUpstreamError increments the upstream failure counter for a source.
func RecordUpstreamError(source string) {
	globalManager.upstreamErrors.WithLabelValues(source).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
