package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "test")

	m.ObserveGeneration(0.002, 31, 10)
	m.ObserveGeneration(0.001, 30, 8)
	m.RecordShortfall("rest")
	m.RecordShortfall("rest")
	m.RecordShortfall("early")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.rosterSize))
	assert.Equal(t, 30.0, testutil.ToFloat64(m.periodDays))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.shortfalls.WithLabelValues("rest")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.shortfalls.WithLabelValues("early")))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestNopMetrics(t *testing.T) {
	m := NewNop()
	assert.NotPanics(t, func() {
		m.ObserveGeneration(1, 31, 10)
		m.RecordShortfall("rest")
	})
}
