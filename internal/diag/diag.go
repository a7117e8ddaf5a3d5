// Package diag holds process-wide diagnostic counters updated from many
// goroutines concurrently. Today that's the (min_w, max_w) frequencies at
// which the hybrid minimizer's running minimum was attained, reported at
// shutdown; contention here never gates throughput.
package diag

import (
	"math"
	"sync/atomic"
)

// WBounds tracks the smallest and largest w at which a caller has observed
// a new running minimum, across any number of concurrent writers.
type WBounds struct {
	minBits atomic.Uint64
	maxBits atomic.Uint64
}

// NewWBounds returns a WBounds with no observations yet: Min() and Max()
// return NaN until the first Observe call.
func NewWBounds() *WBounds {
	b := &WBounds{}
	b.minBits.Store(math.Float64bits(math.NaN()))
	b.maxBits.Store(math.Float64bits(math.NaN()))
	return b
}

// Observe records w as a candidate new minimum/maximum, via CAS retry
// loops so concurrent writers never lose an update.
func (b *WBounds) Observe(w float64) {
	casLower(&b.minBits, w, func(cur, next float64) bool {
		return math.IsNaN(cur) || next < cur
	})
	casLower(&b.maxBits, w, func(cur, next float64) bool {
		return math.IsNaN(cur) || next > cur
	})
}

func casLower(bits *atomic.Uint64, w float64, better func(cur, next float64) bool) {
	for {
		old := bits.Load()
		cur := math.Float64frombits(old)
		if !better(cur, w) {
			return
		}
		next := math.Float64bits(w)
		if bits.CompareAndSwap(old, next) {
			return
		}
	}
}

// Min returns the smallest observed w, or NaN if Observe was never called.
func (b *WBounds) Min() float64 { return math.Float64frombits(b.minBits.Load()) }

// Max returns the largest observed w, or NaN if Observe was never called.
func (b *WBounds) Max() float64 { return math.Float64frombits(b.maxBits.Load()) }
