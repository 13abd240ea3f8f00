package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the registry served on /metrics together with the HTTP
// request metrics of the server itself.
type Metrics struct {
	registry       *prometheus.Registry
	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter
	handler        http.Handler
}

// NewMetrics creates a registry holding the Go runtime and process
// collectors, the request metrics and any extra collectors given.
func NewMetrics(extra ...prometheus.Collector) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "primecalc",
			Name:      "active_requests",
			Help:      "HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "primecalc",
			Name:      "requests_total",
			Help:      "HTTP requests served.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.activeRequests,
		m.requestsTotal,
	)
	m.registry.MustRegister(extra...)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return m
}

// Registry returns the registry served on /metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncrementActiveRequests marks the start of a request.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests marks the end of a request.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// WritePrometheus writes the registry in the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
