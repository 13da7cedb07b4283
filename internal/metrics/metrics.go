// Package metrics exposes the Prometheus collectors of the dashboard.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "chitragupta_dashboard"

	// NoActiveEntry labels renders where no navigation entry matched.
	NoActiveEntry = "none"
)

var (
	metricsOnce         sync.Once
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	shellRendersTotal   *prometheus.CounterVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests handled",
		}, []string{"method", "route", "status"})

		httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"})

		shellRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shell",
			Name:      "renders_total",
			Help:      "Shell renders by highlighted navigation entry",
		}, []string{"active"})
	})
}

// ObserveRequest records one completed HTTP request.
func ObserveRequest(method, route, status string, seconds float64) {
	initMetrics()
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

// ObserveShellRender records a shell render. activePath is the path of the
// highlighted entry, or "" when nothing matched.
func ObserveShellRender(activePath string) {
	initMetrics()
	if activePath == "" {
		activePath = NoActiveEntry
	}
	shellRendersTotal.WithLabelValues(activePath).Inc()
}

// ShellRenders returns the counter for the given active path label. It is
// used by tests and diagnostics.
func ShellRenders(activePath string) prometheus.Counter {
	initMetrics()
	if activePath == "" {
		activePath = NoActiveEntry
	}
	return shellRendersTotal.WithLabelValues(activePath)
}
