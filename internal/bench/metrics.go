package bench

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects per-sample measurements in a private Prometheus registry.
//
// Exposed series:
//   - fibbench_fib_seconds{strategy}: histogram of the fastest time per index
//   - fibbench_samples_total{strategy}: number of samples produced
//   - fibbench_highest_index{strategy}: largest index measured so far
type Metrics struct {
	registry *prometheus.Registry
	seconds  *prometheus.HistogramVec
	samples  *prometheus.CounterVec
	highest  *prometheus.GaugeVec

	mu  sync.Mutex
	max map[string]uint64
}

// NewMetrics creates the collectors and registers them in a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		max:      make(map[string]uint64),
		registry: prometheus.NewRegistry(),
		seconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fibbench_fib_seconds",
			Help:    "Fastest time to compute F(n), per measured index.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"strategy"}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fibbench_samples_total",
			Help: "Number of indices measured.",
		}, []string{"strategy"}),
		highest: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fibbench_highest_index",
			Help: "Largest Fibonacci index measured.",
		}, []string{"strategy"}),
	}
	m.registry.MustRegister(m.seconds, m.samples, m.highest)
	return m
}

// Observe records one sample.
func (m *Metrics) Observe(strategy string, s Sample) {
	m.seconds.WithLabelValues(strategy).Observe(s.Seconds())
	m.samples.WithLabelValues(strategy).Inc()

	// Samples arrive out of order across workers; the gauge only moves up.
	m.mu.Lock()
	defer m.mu.Unlock()
	if cur, ok := m.max[strategy]; !ok || s.N > cur {
		m.max[strategy] = s.N
		m.highest.WithLabelValues(strategy).Set(float64(s.N))
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the metrics in the Prometheus text format to path,
// atomically, for the node exporter textfile collector or later inspection.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
