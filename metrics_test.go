package genni

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	res, err := NewSolver(WithBounds(firstWindow), WithWorkers(2), WithMetrics(m)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(res.RightRecords), testutil.ToFloat64(m.RightRecords))
	assert.Equal(t, float64(res.IndexKeys), testutil.ToFloat64(m.IndexKeys))
	assert.Equal(t, float64(res.IndexEntries), testutil.ToFloat64(m.IndexEntries))
	assert.Equal(t, float64(res.Probes), testutil.ToFloat64(m.Probes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solutions))
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.ProbeHits), 1.0)

	// xl = 3987d and yl = 956e share the first three products; the search
	// prunes the 42 digit pairs (d, e) with d*e < 10.
	assert.Equal(t, 42.0, testutil.ToFloat64(m.LeftPruned.WithLabelValues(InvalidProduct.String())))

	assert.Equal(t, 3, testutil.CollectAndCount(m.PhaseDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observePhase("right", 0)
		m.addSearch(searchTally{pruned: 1})
	})
}

func TestNewMetricsWithoutRegistry(t *testing.T) {
	m := NewMetrics(nil)
	m.Solutions.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solutions))
}
