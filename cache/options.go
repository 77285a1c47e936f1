package cache

import "github.com/IvanBrykalov/lrucache/recency"

// Options configures the cache. Only Capacity is required; defaults for the
// rest are applied in New():
//   - nil Sequence => recency/linked (O(1) arena list)
//   - nil Metrics  => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the maximum number of resident entries. Must be > 0.
	Capacity int

	// Sequence selects the recency representation. recency/linked and
	// recency/scan are observably identical and differ only in latency.
	Sequence recency.Factory[K]

	// OnEvict is called once per evicted entry, after the cache lock has
	// been released. It may safely call back into the cache.
	OnEvict func(k K, v V)

	// Metrics receives Hit/Miss/Evict/Size signals.
	Metrics Metrics
}
