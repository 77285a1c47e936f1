// Package prom exports cache metrics to Prometheus.
package prom

import (
	"github.com/IvanBrykalov/lrucache/cache"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements cache.Metrics and exports Prometheus counters/gauges.
// Safe for concurrent use; all Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits    prometheus.Counter
	misses  prometheus.Counter
	evicts  prometheus.Counter
	entries prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:          registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
//
// It panics if the metrics are already registered on reg, like MustRegister.
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		})
	}
	a := &Adapter{
		hits:   counter("hits_total", "Cache hits"),
		misses: counter("misses_total", "Cache misses"),
		evicts: counter("evictions_total", "Entries evicted as least recently used"),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident entries",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts, a.entries)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Evict increments the eviction counter.
func (a *Adapter) Evict() { a.evicts.Inc() }

// Size sets the resident-entries gauge.
func (a *Adapter) Size(entries int) { a.entries.Set(float64(entries)) }

// Compile-time check: ensure Adapter implements cache.Metrics.
var _ cache.Metrics = (*Adapter)(nil)
