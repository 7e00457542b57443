package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the decision collectors. Each Metrics registers on its own
// registry so tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	decisions *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetrics creates the collectors plus the standard Go and process ones.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "authorizer",
			Name:      "decisions_total",
			Help:      "Authorization decisions by effect and reason.",
		}, []string{"effect", "reason"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "authorizer",
			Name:      "decision_duration_seconds",
			Help:      "Time spent producing a decision.",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
		}, []string{"effect"}),
	}

	reg.MustRegister(
		m.decisions,
		m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) observe(effect, reason string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(effect, reason).Inc()
	m.duration.WithLabelValues(effect).Observe(elapsed.Seconds())
}
