package observability_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/observability"
)

func TestMetrics_CountOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.CountOutcome(observability.OutcomeResolved)
	m.CountOutcome(observability.OutcomeResolved)
	m.CountOutcome(observability.OutcomeUnresolved)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(observability.OutcomeResolved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(observability.OutcomeUnresolved)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Resolutions.WithLabelValues(observability.OutcomeUnavailable)))
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *observability.Metrics

	// Hosts that opt out of metrics pass nil all the way through.
	assert.NotPanics(t, func() {
		m.CountOutcome(observability.OutcomeResolved)
		m.ObserveQuery("redis", 10*time.Millisecond)
	})
}

func TestMetrics_ObserveQuery(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.ObserveQuery("redis", 50*time.Millisecond)
	m.ObserveQuery("static", time.Millisecond)

	count := testutil.CollectAndCount(m.SourceQuerySeconds)
	assert.Equal(t, 2, count)
}
