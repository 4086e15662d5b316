package sessioncache

// metrics.go is a thin abstraction over Prometheus so that the session
// cache can be used with or without metrics. When the caller passes a
// *prometheus.Registry via WithMetrics, unlabeled metrics are created and
// registered; otherwise a no-op sink is used and the hot path pays nothing
// for metric updates. Adapted from the teacher's pkg/metrics.go, with the
// per-shard label dropped (this cache is a single instance, not sharded).
//
// ┌───────────────────────────────────────┐
// │ Metric                      │ Type    │
// ├──────────────────────────────┼─────────┤
// │ session_cache_hits_total     │ Counter │
// │ session_cache_misses_total   │ Counter │
// │ session_cache_saves_total    │ Counter │
// │ session_cache_save_collisions_total│ Counter │
// │ session_cache_evictions_total│ Counter │
// │ session_cache_occupied_slots │ Gauge   │
// └───────────────────────────────────────┘
//
// © 2025 session-cache authors. MIT License.

import "github.com/prometheus/client_golang/prometheus"

// metricsSink abstracts the concrete backend (Prometheus vs. no-op). It is
// not exposed outside the package.
type metricsSink interface {
	incSave()
	incSaveCollision()
	incLoadHit()
	incLoadMiss()
	incEviction()
	setOccupancy(slots int64)
}

type noopMetrics struct{}

func (noopMetrics) incSave()             {}
func (noopMetrics) incSaveCollision()    {}
func (noopMetrics) incLoadHit()          {}
func (noopMetrics) incLoadMiss()         {}
func (noopMetrics) incEviction()         {}
func (noopMetrics) setOccupancy(int64)   {}

type promMetrics struct {
	saves      prometheus.Counter
	collisions prometheus.Counter
	hits       prometheus.Counter
	misses     prometheus.Counter
	evictions  prometheus.Counter
	occupied   prometheus.Gauge
}

func newPromMetrics(reg *prometheus.Registry) *promMetrics {
	pm := &promMetrics{
		saves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "session_cache",
			Name:      "saves_total",
			Help:      "Number of Save calls that stored a new slot.",
		}),
		collisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "session_cache",
			Name:      "save_collisions_total",
			Help:      "Number of Save calls absorbed silently because the indexed key already existed.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "session_cache",
			Name:      "hits_total",
			Help:      "Number of Load calls that found the session.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "session_cache",
			Name:      "misses_total",
			Help:      "Number of Load calls that did not find the session.",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "session_cache",
			Name:      "evictions_total",
			Help:      "Number of slots reclaimed from the LRU tail to make room for a save.",
		}),
		occupied: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "session_cache",
			Name:      "occupied_slots",
			Help:      "Number of slots currently holding a session.",
		}),
	}

	reg.MustRegister(pm.saves, pm.collisions, pm.hits, pm.misses, pm.evictions, pm.occupied)
	return pm
}

func (m *promMetrics) incSave()          { m.saves.Inc() }
func (m *promMetrics) incSaveCollision() { m.collisions.Inc() }
func (m *promMetrics) incLoadHit()       { m.hits.Inc() }
func (m *promMetrics) incLoadMiss()      { m.misses.Inc() }
func (m *promMetrics) incEviction()      { m.evictions.Inc() }
func (m *promMetrics) setOccupancy(slots int64) {
	m.occupied.Set(float64(slots))
}

// newMetricsSink decides which implementation to use. reg == nil disables
// metrics entirely.
func newMetricsSink(reg *prometheus.Registry) metricsSink {
	if reg == nil {
		return noopMetrics{}
	}
	return newPromMetrics(reg)
}
