// Package singleflight coalesces concurrent calls for the same key.
package singleflight

import (
	"context"
	"errors"
	"sync"
)

// ErrLeaderPanicked is what followers receive when the leader's fn panicked.
var ErrLeaderPanicked = errors.New("singleflight: leader panicked")

// Group runs fn at most once per key at a time; concurrent callers for
// that key wait for and share the leader's result.
//
// Concurrency notes:
//   - Publishing (val, err) happens-before close(c.done), so reads after
//     <-done observe the final values.
//   - Cancelling ctx in a follower unblocks only that follower; it does
//     NOT cancel the leader's fn.
//
// The zero Group is ready to use.
type Group[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]*call[V]
}

type call[V any] struct {
	done chan struct{} // closed when val/err are published
	val  V
	err  error
}

// Do runs fn for key unless a call for key is already in flight, in which
// case it waits for that call. shared reports whether the result came from
// another caller's fn. A follower whose ctx ends first returns ctx.Err().
func (g *Group[K, V]) Do(ctx context.Context, key K, fn func() (V, error)) (v V, err error, shared bool) {
	g.mu.Lock()
	if g.m == nil {
		g.m = make(map[K]*call[V])
	}
	if c, ok := g.m[key]; ok {
		g.mu.Unlock()

		select {
		case <-c.done:
			return c.val, c.err, true
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err(), false
		}
	}

	c := &call[V]{done: make(chan struct{})}
	g.m[key] = c
	g.mu.Unlock()

	// The marker must be cleared and followers released even if fn panics.
	completed := false
	defer func() {
		if !completed {
			c.err = ErrLeaderPanicked
		}
		g.mu.Lock()
		delete(g.m, key)
		g.mu.Unlock()
		close(c.done)
	}()

	c.val, c.err = fn()
	completed = true
	return c.val, c.err, false
}
