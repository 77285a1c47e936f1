package cache

// Cache is a bounded, in-memory key/value cache with strict LRU eviction.
// All methods are safe for concurrent use by multiple goroutines and are
// linearizable: each call takes the cache's single lock for its whole
// critical section.
type Cache[K comparable, V any] interface {
	// Get returns the value for k and a flag indicating presence.
	// On hit the key becomes most recently used. A miss leaves the
	// recency order untouched.
	Get(k K) (V, bool)

	// Put inserts or updates k→v and makes k most recently used.
	// Inserting a new key into a full cache first evicts exactly one
	// entry: the least recently used one. Updating never evicts.
	Put(k K, v V)

	// Len returns the number of resident entries, always <= capacity.
	// It does not affect recency.
	Len() int

	// Stats returns cumulative hit/miss/eviction counters.
	// It does not take the cache lock.
	Stats() Stats
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}
