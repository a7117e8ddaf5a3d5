// Package pregionset implements the region engine's shared, grow-only
// collection of certified disks (pregions): single-writer/many-reader,
// never deleting, with the obsoletion check the breadth-first expansion
// uses to skip candidate seeds already covered by a pregion of shallower
// depth (or, with strict checking, by any covering pregion).
package pregionset

import (
	"sync"

	"github.com/cwbudde/stabregion/internal/catalog"
)

// obsoletionShrink is the conservative factor applied when testing whether
// a candidate point lies "inside" an existing pregion for obsoletion
// purposes — distinct from (and independent of) the configuration's own
// published-radius safeguard.
const obsoletionShrink = 0.99

// PRegion is a certified open disk of constant nu in parameter space,
// tagged with the breadth-first depth at which it was published.
type PRegion struct {
	Center catalog.Par
	Radius float64
	Depth  int
}

// Set is a thread-safe, append-only collection of PRegions.
type Set struct {
	mu       sync.RWMutex
	regions  []PRegion
	capacity int // safety cap on growth; 0 means unbounded
}

// New returns an empty Set. capacity, if positive, is the safety cap that
// AtCapacity reports on (used to bound runaway expansion on a
// misconfigured system); Append itself does not enforce it.
func New(capacity int) *Set {
	return &Set{capacity: capacity}
}

// Len returns the current number of published pregions.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.regions)
}

// AtCapacity reports whether the set has reached its safety cap.
func (s *Set) AtCapacity() bool {
	if s.capacity <= 0 {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.regions) >= s.capacity
}

// Append publishes a new pregion. Safe for concurrent callers; the only
// exclusive-lock section in the engine.
func (s *Set) Append(r PRegion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions = append(s.regions, r)
}

// Snapshot returns a copy of the currently published pregions, safe to
// range over without holding any lock.
func (s *Set) Snapshot() []PRegion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PRegion, len(s.regions))
	copy(out, s.regions)
	return out
}

// Obsolete reports whether q is already covered by an existing pregion
// that should pre-empt a new one at depth d: some published pregion
// contains q and either that pregion's depth is shallower than d, or
// strict is set (configuration requests strict obsoletion checking
// regardless of depth).
func (s *Set) Obsolete(q catalog.Par, d int, strict bool) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.regions {
		if !isPointInside(q, r) {
			continue
		}
		if strict || r.Depth < d {
			return true
		}
	}
	return false
}

// isPointInside applies the conservative distance test used for both
// obsoletion and edge-candidate filtering: q counts as inside r only if
// it is strictly within 0.99 of r's radius, leaving a thin certified
// margin for numerical error.
func isPointInside(q catalog.Par, r PRegion) bool {
	dx := q.P1 - r.Center.P1
	dy := q.P2 - r.Center.P2
	dist2 := dx*dx + dy*dy
	shrunk := r.Radius * obsoletionShrink
	return dist2 < shrunk*shrunk
}

// FilterCandidates returns the subset of candidates not covered by any
// published pregion and lying within limits (when enforceLimits is set).
func (s *Set) FilterCandidates(candidates []catalog.Par, limits catalog.Limits, enforceLimits bool) []catalog.Par {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Par, 0, len(candidates))
candidate:
	for _, c := range candidates {
		if enforceLimits && !limits.Contains(c) {
			continue
		}
		for _, r := range s.regions {
			if isPointInside(c, r) {
				continue candidate
			}
		}
		out = append(out, c)
	}
	return out
}
