// Package scan implements the simplest recency sequence: a slice of keys
// searched linearly on every touch. Touch is O(n); PopFront is amortized O(1).
// Prefer recency/linked unless capacities are small.
package scan

import "github.com/IvanBrykalov/lrucache/recency"

// seq keeps keys in buf[head:], LRU first.
type seq[K comparable] struct {
	buf  []K
	head int
}

type scanFactory[K comparable] struct{}

// New returns a Factory that builds linear-scan sequences.
func New[K comparable]() recency.Factory[K] { return scanFactory[K]{} }

// New implements recency.Factory, reserving at most recency.MaxPrealloc keys.
func (scanFactory[K]) New(capacity int) recency.Sequence[K] {
	return &seq[K]{buf: make([]K, 0, recency.PreallocHint(capacity))}
}

// PushBack appends k at MRU.
func (s *seq[K]) PushBack(k K) {
	s.buf = append(s.buf, k)
}

// MoveToBack finds k by linear scan, removes it and re-appends it at MRU.
func (s *seq[K]) MoveToBack(k K) bool {
	pos := s.find(k)
	if pos < 0 {
		return false
	}
	last := len(s.buf) - 1
	if pos == last {
		return true
	}
	// shift the tail left by one and put k at the end
	copy(s.buf[pos:], s.buf[pos+1:])
	s.buf[last] = k
	return true
}

// PopFront removes the LRU key.
func (s *seq[K]) PopFront() (K, bool) {
	var zero K
	if s.head >= len(s.buf) {
		return zero, false
	}
	k := s.buf[s.head]
	s.buf[s.head] = zero
	s.head++
	s.compact()
	return k, true
}

// Len returns the number of keys.
func (s *seq[K]) Len() int { return len(s.buf) - s.head }

// Keys returns a copy of the live window.
func (s *seq[K]) Keys() []K {
	out := make([]K, s.Len())
	copy(out, s.buf[s.head:])
	return out
}

func (s *seq[K]) find(k K) int {
	for i := s.head; i < len(s.buf); i++ {
		if s.buf[i] == k {
			return i
		}
	}
	return -1
}

// compact slides the live window back to index 0 once at least half of the
// backing array is dead prefix, keeping pops amortized O(1).
func (s *seq[K]) compact() {
	if s.head == len(s.buf) {
		s.buf = s.buf[:0]
		s.head = 0
		return
	}
	if s.head < len(s.buf)/2 {
		return
	}
	n := copy(s.buf, s.buf[s.head:])
	var zero K
	for i := n; i < len(s.buf); i++ {
		s.buf[i] = zero
	}
	s.buf = s.buf[:n]
	s.head = 0
}
