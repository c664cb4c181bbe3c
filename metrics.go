package genni

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "genni"

// Metrics holds the search counters. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	RightRecords       prometheus.Gauge
	IndexKeys          prometheus.Gauge
	IndexEntries       prometheus.Gauge
	Probes             prometheus.Gauge
	LeftPruned         *prometheus.CounterVec
	ProbeHits          prometheus.Counter
	CollisionsRejected prometheus.Counter
	Solutions          prometheus.Counter
	PhaseDuration      *prometheus.HistogramVec
}

// NewMetrics creates the search metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RightRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "right_records",
			Help:      "Valid right-half records found by the right enumeration",
		}),
		IndexKeys: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "index_keys",
			Help:      "Distinct keys in the right-half index",
		}),
		IndexEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "index_entries",
			Help:      "Entries stored in the right-half index, collisions included",
		}),
		Probes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "probe_values",
			Help:      "Distinct yr values probed per left candidate",
		}),
		LeftPruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "left_pruned_total",
			Help:      "Left-half candidates skipped by reason",
		}, []string{"reason"}),
		ProbeHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "probe_hits_total",
			Help:      "Probe keys present in the index",
		}),
		CollisionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "collisions_rejected_total",
			Help:      "Index entries under a matching key whose yl or yr did not match",
		}),
		Solutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "solutions_total",
			Help:      "Solutions emitted by the left search",
		}),
		PhaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of each search phase",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 12),
		}, []string{"phase"}),
	}
	if reg != nil {
		reg.MustRegister(m.RightRecords, m.IndexKeys, m.IndexEntries, m.Probes,
			m.LeftPruned, m.ProbeHits, m.CollisionsRejected, m.Solutions, m.PhaseDuration)
	}
	return m
}

func (m *Metrics) observePhase(phase string, d time.Duration) {
	if m == nil {
		return
	}
	m.PhaseDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// addSearch folds one chunk's local tallies into the counters.
func (m *Metrics) addSearch(t searchTally) {
	if m == nil {
		return
	}
	m.LeftPruned.WithLabelValues(InvalidProduct.String()).Add(float64(t.pruned))
	m.ProbeHits.Add(float64(t.hits))
	m.CollisionsRejected.Add(float64(t.rejected))
	m.Solutions.Add(float64(t.solutions))
}

func (m *Metrics) setIndex(records int, idx *Index) {
	if m == nil {
		return
	}
	m.RightRecords.Set(float64(records))
	m.IndexKeys.Set(float64(idx.Keys()))
	m.IndexEntries.Set(float64(idx.Entries()))
	m.Probes.Set(float64(len(idx.Probes())))
}
