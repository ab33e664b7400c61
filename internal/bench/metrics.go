package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/openfga/cinq/internal/build"
)

// Metrics records case timings on a registry of its own.
type Metrics struct {
	registry *prometheus.Registry

	iterationDuration *prometheus.HistogramVec
	caseFailures      *prometheus.CounterVec
}

// NewMetrics returns Metrics backed by a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		iterationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: build.ProjectName,
			Name:      "bench_iteration_duration_seconds",
			Help:      "The time taken by one iteration of a benchmark case.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"case"}),
		caseFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: build.ProjectName,
			Name:      "bench_case_failures_total",
			Help:      "The number of benchmark cases that returned an error or panicked.",
		}, []string{"case"}),
	}
}

// Gatherer exposes the registry the metrics are recorded on.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteFile writes the current metric values to path in the Prometheus text format.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
