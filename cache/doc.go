// Package cache provides a generic, fixed-capacity in-memory cache with
// strict least-recently-used eviction, safe for concurrent use.
//
// Design
//
//   - Concurrency: one sync.Mutex guards the lookup table and the recency
//     sequence as a single unit. Get takes the exclusive lock too: every hit
//     rewrites the recency order, so a reader/writer split buys nothing.
//     Operations are linearizable.
//
//   - Storage: a map[K]V for lookups plus a recency.Sequence[K] ordering the
//     same keys from least to most recently used. The default sequence
//     (recency/linked) is an index-addressed doubly linked arena with O(1)
//     touch and eviction; recency/scan is a linear-scan alternative with the
//     same observable behaviour.
//
//   - Eviction: Put of a new key into a full cache removes exactly one entry,
//     the least recently used. Updating a resident key never evicts. A Get
//     miss does not count as a use.
//
//   - Callbacks: Options.OnEvict and Options.Metrics run after the lock is
//     released, so they may call back into the cache and a panic in them
//     cannot leave the table and sequence out of sync.
//
//   - Loading: NewLoading wraps a cache with GetOrLoad, coalescing
//     concurrent loads for the same key.
//
// Basic usage
//
//	c, err := cache.New[string, []byte](cache.Options[string, []byte]{Capacity: 10_000})
//	if err != nil {
//	    return err // cache.ErrInvalidCapacity
//	}
//	c.Put("a", []byte("1"))
//	if v, ok := c.Get("a"); ok {
//	    _ = v // use value
//	}
//
// Exporting metrics (Prometheus adapter)
//
//	m := prom.New(nil, "lrucache", "demo", nil) // implements Metrics
//	c := cache.MustNew[string, []byte](cache.Options[string, []byte]{
//	    Capacity: 10_000,
//	    Metrics:  m,
//	})
package cache
