package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the resolutions counter.
const (
	OutcomeResolved    = "resolved"
	OutcomeUnresolved  = "unresolved"
	OutcomeUnavailable = "unavailable"
)

// Metrics holds the Prometheus collectors for the resolver.
type Metrics struct {
	Resolutions        *prometheus.CounterVec
	SourceQuerySeconds *prometheus.HistogramVec
}

// NewMetrics creates the resolver collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer for the usual global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "navrules_resolutions_total",
				Help: "Total number of navigation resolutions by outcome",
			},
			[]string{"outcome"},
		),
		SourceQuerySeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "navrules_source_query_seconds",
				Help: "Duration of rule source queries",
			},
			[]string{"source"},
		),
	}
	reg.MustRegister(m.Resolutions, m.SourceQuerySeconds)
	return m
}

// CountOutcome increments the resolutions counter. Nil-safe so callers
// don't have to guard every call site.
func (m *Metrics) CountOutcome(outcome string) {
	if m == nil {
		return
	}
	m.Resolutions.WithLabelValues(outcome).Inc()
}

// ObserveQuery records the duration of one source query.
func (m *Metrics) ObserveQuery(source string, d time.Duration) {
	if m == nil {
		return
	}
	m.SourceQuerySeconds.WithLabelValues(source).Observe(d.Seconds())
}
