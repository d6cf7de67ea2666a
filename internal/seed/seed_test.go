package seed

import (
	"testing"

	"github.com/google/uuid"
)

func TestStreamsAreReproducible(t *testing.T) {
	a := New(1337, StageTasks)
	b := New(1337, StageTasks)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
	if New(1337, StageTasks).Uint64() == New(1337, StageComments).Uint64() {
		t.Fatalf("different stages should not share a stream")
	}
}

func TestIDsAreVersion4AndReproducible(t *testing.T) {
	a := NewIDs(7, StageUsers)
	b := NewIDs(7, StageUsers)
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id := a.Next()
		if id != b.Next() {
			t.Fatalf("id streams diverged at %d", i)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			t.Fatalf("parse %q: %v", id, err)
		}
		if parsed.Version() != 4 {
			t.Fatalf("expected version 4, got %d", parsed.Version())
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestIDStreamDoesNotShiftValueStream(t *testing.T) {
	r := New(99, StageProjects)
	want := r.Float64()

	ids := NewIDs(99, StageProjects)
	ids.Next()
	ids.Next()
	if got := New(99, StageProjects).Float64(); got != want {
		t.Fatalf("value stream changed after drawing ids: %v != %v", got, want)
	}
}

func TestWeightedRespectsZeroWeights(t *testing.T) {
	r := New(1, StageTags)
	for i := 0; i < 1000; i++ {
		if idx := r.Weighted([]float64{0, 1, 0}); idx != 1 {
			t.Fatalf("expected only index 1, got %d", idx)
		}
	}
}

func TestSampleSmallPool(t *testing.T) {
	r := New(5, StageTasks)
	if got := Sample(r, []string{"a", "b"}, 3); len(got) != 2 {
		t.Fatalf("expected sample capped to pool size, got %v", got)
	}
	if got := Sample(r, []string{}, 3); got != nil {
		t.Fatalf("expected nil sample for empty pool, got %v", got)
	}
}
