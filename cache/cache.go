package cache

import (
	"errors"
	"sync"

	"github.com/IvanBrykalov/lrucache/internal/util"
	"github.com/IvanBrykalov/lrucache/recency"
	"github.com/IvanBrykalov/lrucache/recency/linked"
)

// ErrInvalidCapacity is returned by New when Options.Capacity is not positive.
var ErrInvalidCapacity = errors.New("cache: capacity must be > 0")

// cache is a bounded key/value store with strict LRU eviction.
// The table and the recency sequence form one unit of state behind mu.
type cache[K comparable, V any] struct {
	// ---- immutable after New ----
	cap int
	opt Options[K, V]

	// ---- guarded by mu ----
	mu    sync.Mutex
	table map[K]V
	seq   recency.Sequence[K] // front=LRU, back=MRU; same key set as table

	// ---- lock-free counters (separate cache lines to avoid false sharing) ----
	_      util.CacheLinePad
	hits   util.PaddedAtomicUint64
	misses util.PaddedAtomicUint64
	evicts util.PaddedAtomicUint64
}

// evicted carries a removed entry out of the critical section.
type evicted[K comparable, V any] struct {
	key K
	val V
	ok  bool
}

// New constructs a cache with the provided Options.
// It returns ErrInvalidCapacity if opt.Capacity <= 0.
// Defaults:
//   - nil Sequence -> linked.New
//   - nil Metrics  -> NoopMetrics
func New[K comparable, V any](opt Options[K, V]) (Cache[K, V], error) {
	if opt.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if opt.Sequence == nil {
		opt.Sequence = linked.New[K]()
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}

	// return pointer-to-impl as the interface (avoids unexported-return lint)
	return &cache[K, V]{
		table: make(map[K]V, recency.PreallocHint(opt.Capacity)),
		seq:   opt.Sequence.New(opt.Capacity),
		cap:   opt.Capacity,
		opt:   opt,
	}, nil
}

// MustNew is like New but panics on invalid options.
func MustNew[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	c, err := New(opt)
	if err != nil {
		panic(err)
	}
	return c
}

// ---- Cache[K,V] implementation ----

// Get returns a copy of the value for k and promotes k to MRU on hit.
func (c *cache[K, V]) Get(k K) (V, bool) {
	v, ok := c.get(k)
	if ok {
		c.hits.Add(1)
		c.opt.Metrics.Hit()
	} else {
		c.misses.Add(1)
		c.opt.Metrics.Miss()
	}
	return v, ok
}

// Put inserts or updates k→v, evicting the LRU entry if a new key
// does not fit. Callbacks run after the lock is released.
func (c *cache[K, V]) Put(k K, v V) {
	ev, size := c.put(k, v)
	if ev.ok {
		c.evicts.Add(1)
		c.opt.Metrics.Evict()
		if cb := c.opt.OnEvict; cb != nil {
			cb(ev.key, ev.val)
		}
	}
	c.opt.Metrics.Size(size)
}

// Len returns the number of resident entries.
// It takes the same exclusive lock as Get/Put so it never observes
// a half-applied Put.
func (c *cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.table)
}

// Stats returns a snapshot of the counters.
func (c *cache[K, V]) Stats() Stats {
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evicts.Load(),
	}
}

// -------------------- critical sections --------------------

// get looks k up and touches it on hit. A miss does not change the order.
// It does not count hits or misses; Get does.
func (c *cache[K, V]) get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.table[k]
	if ok {
		c.seq.MoveToBack(k)
	}
	return v, ok
}

// put applies one insert/update and returns the evicted entry (if any)
// together with the resulting size. At most one entry is evicted per call.
func (c *cache[K, V]) put(k K, v V) (evicted[K, V], int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var ev evicted[K, V]
	if _, ok := c.table[k]; ok {
		// Update in place: size is unchanged, never evicts.
		c.table[k] = v
		c.seq.MoveToBack(k)
		return ev, len(c.table)
	}

	if len(c.table) >= c.cap {
		if old, ok := c.seq.PopFront(); ok {
			ev = evicted[K, V]{key: old, val: c.table[old], ok: true}
			delete(c.table, old)
		}
	}
	c.table[k] = v
	c.seq.PushBack(k)
	return ev, len(c.table)
}
