// Package recencytest provides a behavioural test suite shared by all
// recency.Sequence implementations.
package recencytest

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/IvanBrykalov/lrucache/recency"
)

// Run exercises f against the recency.Sequence contract.
func Run(t *testing.T, f recency.Factory[int]) {
	t.Helper()

	t.Run("Empty", func(t *testing.T) {
		t.Parallel()
		s := f.New(4)
		if s.Len() != 0 {
			t.Fatalf("empty Len want 0, got %d", s.Len())
		}
		if _, ok := s.PopFront(); ok {
			t.Fatal("PopFront on empty must report false")
		}
		if s.MoveToBack(1) {
			t.Fatal("MoveToBack on absent key must report false")
		}
		if len(s.Keys()) != 0 {
			t.Fatal("Keys on empty must be empty")
		}
	})

	t.Run("PushBackOrder", func(t *testing.T) {
		t.Parallel()
		s := f.New(4)
		for i := 1; i <= 3; i++ {
			s.PushBack(i)
		}
		assertKeys(t, s, 1, 2, 3)
	})

	t.Run("MoveToBack", func(t *testing.T) {
		t.Parallel()
		s := f.New(4)
		for i := 1; i <= 4; i++ {
			s.PushBack(i)
		}
		if !s.MoveToBack(1) { // front -> back
			t.Fatal("MoveToBack(1) must find key")
		}
		assertKeys(t, s, 2, 3, 4, 1)
		s.MoveToBack(3) // middle -> back
		assertKeys(t, s, 2, 4, 1, 3)
		s.MoveToBack(3) // already back
		assertKeys(t, s, 2, 4, 1, 3)
	})

	t.Run("PopFront", func(t *testing.T) {
		t.Parallel()
		s := f.New(2)
		s.PushBack(1)
		s.PushBack(2)
		s.MoveToBack(1)

		k, ok := s.PopFront()
		if !ok || k != 2 {
			t.Fatalf("PopFront want 2, got %d ok=%v", k, ok)
		}
		k, ok = s.PopFront()
		if !ok || k != 1 {
			t.Fatalf("PopFront want 1, got %d ok=%v", k, ok)
		}
		if s.Len() != 0 {
			t.Fatalf("Len after draining want 0, got %d", s.Len())
		}
		if s.MoveToBack(1) {
			t.Fatal("popped key must be gone")
		}

		// usable again after draining
		s.PushBack(7)
		assertKeys(t, s, 7)
	})

	t.Run("GrowsPastHint", func(t *testing.T) {
		t.Parallel()
		s := f.New(1)
		for i := 0; i < 100; i++ {
			s.PushBack(i)
		}
		if s.Len() != 100 {
			t.Fatalf("Len want 100, got %d", s.Len())
		}
	})

	t.Run("MatchesModel", func(t *testing.T) {
		t.Parallel()
		runModel(t, f, 64, 5_000)
	})
}

// runModel drives s and a naive slice model with the same random operations
// (bounded like a cache of the given capacity) and compares them after each step.
func runModel(t *testing.T, f recency.Factory[int], capacity, steps int) {
	t.Helper()

	r := rand.New(rand.NewSource(42))
	s := f.New(capacity)
	var model []int

	for step := 0; step < steps; step++ {
		k := r.Intn(capacity * 2)
		pos := slices.Index(model, k)
		switch {
		case pos >= 0:
			model = append(slices.Delete(model, pos, pos+1), k)
			if !s.MoveToBack(k) {
				t.Fatalf("step %d: MoveToBack(%d) lost key", step, k)
			}
		case len(model) == capacity:
			want := model[0]
			model = append(model[1:], k)
			got, ok := s.PopFront()
			if !ok || got != want {
				t.Fatalf("step %d: PopFront want %d, got %d ok=%v", step, want, got, ok)
			}
			s.PushBack(k)
		default:
			model = append(model, k)
			if s.MoveToBack(k) {
				t.Fatalf("step %d: MoveToBack(%d) found absent key", step, k)
			}
			s.PushBack(k)
		}
		if got := s.Keys(); !slices.Equal(got, model) {
			t.Fatalf("step %d: keys\n got %v\nwant %v", step, got, model)
		}
	}
}

func assertKeys(t *testing.T, s recency.Sequence[int], want ...int) {
	t.Helper()
	if got := s.Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys want %v, got %v", want, got)
	}
	if s.Len() != len(want) {
		t.Fatalf("Len want %d, got %d", len(want), s.Len())
	}
}
