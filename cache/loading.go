package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/IvanBrykalov/lrucache/internal/singleflight"
)

// ErrNoLoader is returned by GetOrLoad when the Loading cache has no loader.
var ErrNoLoader = errors.New("cache: no loader provided")

// LoaderFunc fetches the value for k on a cache miss.
type LoaderFunc[K comparable, V any] func(ctx context.Context, k K) (V, error)

// Loading wraps a Cache with read-through loading.
// Concurrent loads for the same key are coalesced (singleflight).
type Loading[K comparable, V any] struct {
	c    Cache[K, V]
	load LoaderFunc[K, V]
	sf   singleflight.Group[K, V]
}

// NewLoading returns a read-through view over c. A nil fn makes every
// GetOrLoad miss fail with ErrNoLoader.
func NewLoading[K comparable, V any](c Cache[K, V], fn LoaderFunc[K, V]) *Loading[K, V] {
	return &Loading[K, V]{c: c, load: fn}
}

// Cache returns the underlying cache.
func (l *Loading[K, V]) Cache() Cache[K, V] { return l.c }

// lookuper is implemented by the package's own cache: a touching lookup that
// leaves hit/miss accounting alone.
type lookuper[K comparable, V any] interface {
	get(k K) (V, bool)
}

// GetOrLoad returns the cached value for k; on miss it runs the loader once
// per key across concurrent callers and stores the result with Put.
// Loader errors are returned wrapped and nothing is cached.
//
// A loaded miss is counted once in Stats/Metrics.
//
// The loader runs with the ctx of the caller that started the load. A
// follower whose own ctx ends returns ctx.Err() without stopping the load,
// but if the leader's ctx is cancelled, the loader sees that cancellation
// and every follower waiting on the same key receives the resulting error
// (for example "cache: load k: context canceled"), even with a live ctx.
func (l *Loading[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	// fast path
	if v, ok := l.c.Get(k); ok {
		return v, nil
	}
	if l.load == nil {
		var zero V
		return zero, ErrNoLoader
	}

	v, err, _ := l.sf.Do(ctx, k, func() (V, error) {
		// double-check after flight join; the fast path already counted the miss
		if v, ok := l.recheck(k); ok {
			return v, nil
		}
		v, err := l.load(ctx, k)
		if err != nil {
			var zero V
			return zero, fmt.Errorf("cache: load %v: %w", k, err)
		}
		l.c.Put(k, v)
		return v, nil
	})
	return v, err
}

// recheck looks k up without counting a second miss when c is our own cache.
func (l *Loading[K, V]) recheck(k K) (V, bool) {
	if lk, ok := l.c.(lookuper[K, V]); ok {
		return lk.get(k)
	}
	return l.c.Get(k)
}
