// Package recency defines the ordering structure a cache uses to track
// which of its keys was used least recently.
package recency

// Sequence is an ordered set of keys, front = least recently used,
// back = most recently used. Each key appears at most once.
//
// Concurrency: implementations are NOT goroutine-safe. The cache calls
// every method under its own lock.
// Important: a Sequence tracks keys only; the cache owns the key->value table.
type Sequence[K comparable] interface {
	// PushBack appends k at the MRU end. k must not already be present.
	PushBack(k K)
	// MoveToBack promotes an existing k to MRU and reports whether k was found.
	MoveToBack(k K) bool
	// PopFront removes and returns the LRU key, or false if the sequence is empty.
	PopFront() (K, bool)
	// Len returns the number of keys in the sequence.
	Len() int
	// Keys returns a snapshot of the keys ordered LRU -> MRU.
	Keys() []K
}

// Factory creates a Sequence sized for a cache of the given capacity.
// The capacity is an allocation hint, not a hard bound.
type Factory[K comparable] interface {
	New(capacity int) Sequence[K]
}

// MaxPrealloc bounds how many slots a Factory (or a cache table) reserves up
// front. Larger capacities grow on demand.
const MaxPrealloc = 1 << 16

// PreallocHint clamps a capacity to [0, MaxPrealloc] for use as a
// make() size hint.
func PreallocHint(capacity int) int {
	return max(0, min(capacity, MaxPrealloc))
}
