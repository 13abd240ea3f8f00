// Package metrics collects Prometheus metrics for prime searches and the
// process memory.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "primecalc"

// SearchMetrics counts the work done by prime searches, labeled by mode.
// A nil *SearchMetrics is valid and records nothing.
type SearchMetrics struct {
	candidates *prometheus.CounterVec
	divisions  *prometheus.CounterVec
	primes     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	active     prometheus.Gauge
}

// NewSearchMetrics creates unregistered search metrics.
func NewSearchMetrics() *SearchMetrics {
	return &SearchMetrics{
		candidates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Candidates examined by trial division.",
		}, []string{"mode"}),
		divisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "divisions_total",
			Help:      "Trial divisions performed.",
		}, []string{"mode"}),
		primes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "primes_found_total",
			Help:      "Primes found.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of successful searches.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"mode"}),
		active: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_searches",
			Help:      "Searches currently running.",
		}),
	}
}

// Collectors returns the collectors to register.
func (m *SearchMetrics) Collectors() []prometheus.Collector {
	if m == nil {
		return nil
	}
	return []prometheus.Collector{m.candidates, m.divisions, m.primes, m.duration, m.active}
}

// Register registers every collector with reg.
func (m *SearchMetrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveCandidate counts one candidate entering trial division.
func (m *SearchMetrics) ObserveCandidate(mode string) {
	if m == nil {
		return
	}
	m.candidates.WithLabelValues(mode).Inc()
}

// AddDivisions counts n trial divisions.
func (m *SearchMetrics) AddDivisions(mode string, n uint64) {
	if m == nil || n == 0 {
		return
	}
	m.divisions.WithLabelValues(mode).Add(float64(n))
}

// ObservePrime counts a found prime and the time the search took.
func (m *SearchMetrics) ObservePrime(mode string, d time.Duration) {
	if m == nil {
		return
	}
	m.primes.WithLabelValues(mode).Inc()
	m.duration.WithLabelValues(mode).Observe(d.Seconds())
}

// SearchStarted increments the active searches gauge.
func (m *SearchMetrics) SearchStarted() {
	if m == nil {
		return
	}
	m.active.Inc()
}

// SearchFinished decrements the active searches gauge.
func (m *SearchMetrics) SearchFinished() {
	if m == nil {
		return
	}
	m.active.Dec()
}
