// Package util contains internal helpers shared by the cache packages.
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import (
	"sync/atomic"
	"unsafe"
)

// CacheLineSize is a reasonable default for most modern CPUs.
const CacheLineSize = 64

// CacheLinePad separates the lock-guarded state of a cache from its
// lock-free counters so readers of one do not bounce the other's line.
type CacheLinePad struct{ _ [CacheLineSize]byte }

// PaddedAtomicUint64 is an atomic uint64 padded to exactly one cache line.
// Hit/miss/evict counters are bumped outside the cache lock by every
// goroutine, so each lives on its own line.
type PaddedAtomicUint64 struct {
	atomic.Uint64
	_ [CacheLineSize - 8]byte
}

// compile-time size check: must be exactly one cache line
var _ [CacheLineSize - int(unsafe.Sizeof(PaddedAtomicUint64{}))]byte
