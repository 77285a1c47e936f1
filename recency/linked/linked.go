// Package linked implements an O(1) recency sequence: a doubly linked list
// stored in an arena of nodes addressed by index, plus a key->index map.
package linked

import "github.com/IvanBrykalov/lrucache/recency"

// nilIdx marks the absence of a neighbour (list ends, empty list).
const nilIdx = -1

// node is one arena slot. Links are arena indices rather than pointers so the
// whole list lives in a single slice and freed slots can be recycled.
type node[K comparable] struct {
	key  K
	prev int // towards LRU
	next int // towards MRU
}

// list is a move-to-back LRU ordering. front=LRU, back=MRU.
type list[K comparable] struct {
	nodes []node[K]
	idx   map[K]int
	free  []int // recycled slots, reused before growing nodes

	front int
	back  int
}

type linkedFactory[K comparable] struct{}

// New returns a Factory that builds arena-backed linked sequences.
func New[K comparable]() recency.Factory[K] { return linkedFactory[K]{} }

// New implements recency.Factory. The arena and index are pre-sized to at
// most recency.MaxPrealloc slots and grow with append beyond that.
func (linkedFactory[K]) New(capacity int) recency.Sequence[K] {
	hint := recency.PreallocHint(capacity)
	return &list[K]{
		nodes: make([]node[K], 0, hint),
		idx:   make(map[K]int, hint),
		front: nilIdx,
		back:  nilIdx,
	}
}

// PushBack links k at MRU in O(1).
func (l *list[K]) PushBack(k K) {
	i := l.alloc(k)
	l.linkBack(i)
	l.idx[k] = i
}

// MoveToBack promotes k to MRU in O(1).
func (l *list[K]) MoveToBack(k K) bool {
	i, ok := l.idx[k]
	if !ok {
		return false
	}
	if i == l.back {
		return true
	}
	l.unlink(i)
	l.linkBack(i)
	return true
}

// PopFront detaches the LRU node and recycles its slot in O(1).
func (l *list[K]) PopFront() (K, bool) {
	i := l.front
	if i == nilIdx {
		var zero K
		return zero, false
	}
	k := l.nodes[i].key
	l.unlink(i)
	delete(l.idx, k)

	// drop the key so the arena does not pin it
	var zero K
	l.nodes[i].key = zero
	l.free = append(l.free, i)
	return k, true
}

// Len returns the number of linked keys.
func (l *list[K]) Len() int { return len(l.idx) }

// Keys walks the list from front to back.
func (l *list[K]) Keys() []K {
	out := make([]K, 0, len(l.idx))
	for i := l.front; i != nilIdx; i = l.nodes[i].next {
		out = append(out, l.nodes[i].key)
	}
	return out
}

// -------------------- internals --------------------

// alloc returns a slot holding k, reusing a freed one when available.
func (l *list[K]) alloc(k K) int {
	if n := len(l.free); n > 0 {
		i := l.free[n-1]
		l.free = l.free[:n-1]
		l.nodes[i] = node[K]{key: k, prev: nilIdx, next: nilIdx}
		return i
	}
	l.nodes = append(l.nodes, node[K]{key: k, prev: nilIdx, next: nilIdx})
	return len(l.nodes) - 1
}

// linkBack attaches a detached node at MRU.
func (l *list[K]) linkBack(i int) {
	n := &l.nodes[i]
	n.prev = l.back
	n.next = nilIdx
	if l.back != nilIdx {
		l.nodes[l.back].next = i
	}
	l.back = i
	if l.front == nilIdx {
		l.front = i
	}
}

// unlink detaches node i from its neighbours and fixes front/back.
func (l *list[K]) unlink(i int) {
	n := &l.nodes[i]
	if n.prev != nilIdx {
		l.nodes[n.prev].next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nilIdx {
		l.nodes[n.next].prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev, n.next = nilIdx, nilIdx
}
