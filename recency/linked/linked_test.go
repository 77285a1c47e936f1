package linked

import (
	"math"
	"testing"

	"github.com/IvanBrykalov/lrucache/recency"
	"github.com/IvanBrykalov/lrucache/recency/recencytest"
)

func TestLinked_Contract(t *testing.T) {
	recencytest.Run(t, New[int]())
}

// Evicted slots must be reused so the arena stays bounded by capacity.
func TestLinked_PopFrontRecyclesSlots(t *testing.T) {
	t.Parallel()

	l := New[string]().New(2).(*list[string])
	l.PushBack("a")
	l.PushBack("b")

	for i, k := range []string{"c", "d", "e", "f"} {
		if _, ok := l.PopFront(); !ok {
			t.Fatalf("round %d: PopFront on full list failed", i)
		}
		l.PushBack(k)
	}
	if len(l.nodes) != 2 {
		t.Fatalf("arena must not grow past 2 slots, got %d", len(l.nodes))
	}
	if got := l.Keys(); len(got) != 2 || got[0] != "e" || got[1] != "f" {
		t.Fatalf("Keys want [e f], got %v", got)
	}
}

// A popped slot must not keep the key reachable.
func TestLinked_PopFrontClearsKey(t *testing.T) {
	t.Parallel()

	l := New[string]().New(1).(*list[string])
	l.PushBack("x")
	l.PopFront()

	if l.nodes[0].key != "" {
		t.Fatalf("freed slot still holds %q", l.nodes[0].key)
	}
	if l.front != nilIdx || l.back != nilIdx {
		t.Fatalf("empty list must have nil ends, got front=%d back=%d", l.front, l.back)
	}
}

// Touching the only element is a no-op.
func TestLinked_MoveToBackSingle(t *testing.T) {
	t.Parallel()

	l := New[int]().New(1).(*list[int])
	l.PushBack(1)
	if !l.MoveToBack(1) {
		t.Fatal("MoveToBack must find the key")
	}
	if l.front != l.back || l.nodes[l.front].prev != nilIdx || l.nodes[l.front].next != nilIdx {
		t.Fatal("single-node links corrupted")
	}
}

// Capacity is a hint: the arena reserves at most MaxPrealloc slots up front.
func TestLinked_HugeCapacityPreallocIsBounded(t *testing.T) {
	t.Parallel()

	l := New[int]().New(math.MaxInt).(*list[int])
	if c := cap(l.nodes); c > recency.MaxPrealloc {
		t.Fatalf("arena reserved %d slots, want <= %d", c, recency.MaxPrealloc)
	}
	for i := 0; i < recency.MaxPrealloc+10; i++ {
		l.PushBack(i)
	}
	if l.Len() != recency.MaxPrealloc+10 {
		t.Fatalf("Len want %d, got %d", recency.MaxPrealloc+10, l.Len())
	}
	if k, ok := l.PopFront(); !ok || k != 0 {
		t.Fatalf("PopFront want 0, got %d ok=%v", k, ok)
	}
}
