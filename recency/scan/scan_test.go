package scan

import (
	"math"
	"testing"

	"github.com/IvanBrykalov/lrucache/recency"
	"github.com/IvanBrykalov/lrucache/recency/recencytest"
)

func TestScan_Contract(t *testing.T) {
	recencytest.Run(t, New[int]())
}

// Repeated pops must slide the live window back instead of growing forever.
func TestScan_PopFrontCompacts(t *testing.T) {
	t.Parallel()

	s := New[int]().New(4).(*seq[int])
	for i := 0; i < 4; i++ {
		s.PushBack(i)
	}
	for i := 4; i < 1000; i++ {
		if _, ok := s.PopFront(); !ok {
			t.Fatalf("PopFront %d failed", i)
		}
		s.PushBack(i)
	}
	if len(s.buf) > 8 {
		t.Fatalf("backing slice must stay near capacity, len=%d head=%d", len(s.buf), s.head)
	}
	if got := s.Keys(); len(got) != 4 || got[0] != 996 || got[3] != 999 {
		t.Fatalf("Keys want [996..999], got %v", got)
	}
}

// Popping the last key resets the window.
func TestScan_DrainResets(t *testing.T) {
	t.Parallel()

	s := New[string]().New(2).(*seq[string])
	s.PushBack("a")
	s.PopFront()
	if s.head != 0 || len(s.buf) != 0 {
		t.Fatalf("drained seq must reset, head=%d len=%d", s.head, len(s.buf))
	}
}

// Capacity is a hint: the buffer reserves at most MaxPrealloc keys up front.
func TestScan_HugeCapacityPreallocIsBounded(t *testing.T) {
	t.Parallel()

	s := New[int]().New(math.MaxInt).(*seq[int])
	if c := cap(s.buf); c > recency.MaxPrealloc {
		t.Fatalf("buffer reserved %d keys, want <= %d", c, recency.MaxPrealloc)
	}
	s.PushBack(1)
	s.PushBack(2)
	if k, ok := s.PopFront(); !ok || k != 1 {
		t.Fatalf("PopFront want 1, got %d ok=%v", k, ok)
	}
}
