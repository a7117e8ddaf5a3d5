package pregionset

import (
	"sync"
	"testing"

	"github.com/cwbudde/stabregion/internal/catalog"
)

func TestAppendAndSnapshot(t *testing.T) {
	s := New(0)
	s.Append(PRegion{Center: catalog.Par{P1: 0, P2: 0}, Radius: 1, Depth: 1})
	s.Append(PRegion{Center: catalog.Par{P1: 1, P2: 1}, Radius: 0.5, Depth: 2})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	snap := s.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot() len = %d, want 2", len(snap))
	}
}

func TestObsoleteByDepth(t *testing.T) {
	s := New(0)
	s.Append(PRegion{Center: catalog.Par{P1: 0, P2: 0}, Radius: 1, Depth: 1})

	// A same-depth candidate (depth 1, not < 1) should not be
	// treated as obsolete unless strict is requested.
	if s.Obsolete(catalog.Par{P1: 0.1, P2: 0}, 1, false) {
		t.Fatalf("same-depth candidate should not be obsolete without strict mode")
	}
	if !s.Obsolete(catalog.Par{P1: 0.1, P2: 0}, 1, true) {
		t.Fatalf("strict mode should treat covered same-depth candidate as obsolete")
	}
	if !s.Obsolete(catalog.Par{P1: 0.1, P2: 0}, 2, false) {
		t.Fatalf("deeper candidate covered by a shallower pregion should be obsolete")
	}
}

func TestObsoleteRespectsShrinkFactor(t *testing.T) {
	s := New(0)
	s.Append(PRegion{Center: catalog.Par{P1: 0, P2: 0}, Radius: 1, Depth: 1})

	// A point at distance 0.995 (inside raw radius 1, outside 0.99*radius)
	// must NOT be considered covered.
	if s.Obsolete(catalog.Par{P1: 0.995, P2: 0}, 2, false) {
		t.Fatalf("point just outside the shrunk radius should not be obsolete")
	}
}

func TestFilterCandidatesDropsCoveredAndOutOfLimits(t *testing.T) {
	s := New(0)
	s.Append(PRegion{Center: catalog.Par{P1: 0, P2: 0}, Radius: 1, Depth: 1})
	limits := catalog.Limits{P1Min: -5, P1Max: 5, P2Min: -5, P2Max: 5}

	candidates := []catalog.Par{
		{P1: 0.1, P2: 0},  // covered
		{P1: 3, P2: 3},    // clear
		{P1: 10, P2: 10},  // out of limits
	}
	got := s.FilterCandidates(candidates, limits, true)
	if len(got) != 1 || got[0] != (catalog.Par{P1: 3, P2: 3}) {
		t.Fatalf("got %+v, want only (3,3)", got)
	}
}

func TestAtCapacity(t *testing.T) {
	s := New(2)
	if s.AtCapacity() {
		t.Fatalf("empty set should not be at capacity")
	}
	s.Append(PRegion{Radius: 1, Depth: 1})
	s.Append(PRegion{Radius: 1, Depth: 1})
	if !s.AtCapacity() {
		t.Fatalf("set with 2 entries and capacity 2 should be at capacity")
	}
}

func TestConcurrentAppendIsRaceFree(t *testing.T) {
	s := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(PRegion{Center: catalog.Par{P1: float64(i)}, Radius: 0.1, Depth: 1})
		}(i)
	}
	wg.Wait()
	if s.Len() != 200 {
		t.Fatalf("Len() = %d, want 200", s.Len())
	}
}
