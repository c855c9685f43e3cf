package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus instruments exposed by the HTTP API.
// Each Metrics instance owns a private registry so that tests can create
// as many instances as they need without duplicate-registration panics.
type Metrics struct {
	registry         *prometheus.Registry
	activeRequests   prometheus.Gauge
	requestsTotal    *prometheus.CounterVec
	multiplyDuration prometheus.Histogram
	handler          http.Handler
}

// NewMetrics creates and registers the server's Prometheus instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "karatcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "karatcalc_requests_total",
			Help: "Total number of HTTP requests served, by path.",
		}, []string{"path"}),
		multiplyDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "karatcalc_multiply_duration_seconds",
			Help:    "Duration of multiplication requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}

	// Pre-create the counter children so every path shows up in the
	// exposition output from the first scrape.
	for _, path := range []string{"/multiply", "/healthz", "/metrics"} {
		m.requestsTotal.WithLabelValues(path)
	}

	registry.MustRegister(
		m.activeRequests,
		m.requestsTotal,
		m.multiplyDuration,
		collectors.NewGoCollector(),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return m
}

// IncrementActiveRequests increments the active request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
}

// DecrementActiveRequests decrements the active request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// CountRequest increments the total request counter for a path.
func (m *Metrics) CountRequest(path string) {
	m.requestsTotal.WithLabelValues(path).Inc()
}

// ObserveMultiplyDuration records the duration of a multiplication request.
func (m *Metrics) ObserveMultiplyDuration(seconds float64) {
	m.multiplyDuration.Observe(seconds)
}

// WritePrometheus serves the metrics in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
