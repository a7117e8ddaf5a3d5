// Package minimize implements the hybrid minimizer over the positive
// frequency axis that backs the Rouché predicate: a coarse log-spaced
// scan followed by a fine linear refinement on the bracketing interval.
package minimize

import (
	"math"

	"github.com/cwbudde/stabregion/internal/compiter"
	"github.com/cwbudde/stabregion/internal/diag"
)

// linRefineSteps is the number of points sampled on the refinement
// interval after the coarse scan locates a bracket.
const linRefineSteps = 1000

// Fast minimizes phi := N(w)/D(w) given a lazy phi-sequence over a
// predetermined log-spaced w-grid and a generator producing a further
// phi-sequence over an arbitrary linear refinement grid. wLog gives the
// w-values backing coarseSeq, in the same order, so the refinement
// interval can be reconstructed from the winning index.
//
// bounds, if non-nil, records the w at which the running minimum was
// attained.
func Fast(wLog []float64, coarseSeq compiter.Sequence, refine func(wLin []float64) compiter.Sequence, bounds *diag.WBounds) float64 {
	kStar, minVal := scanMinIndex(coarseSeq)
	if kStar < 0 || kStar == len(wLog)-1 {
		return 0.0
	}

	lo, hi := refinementBracket(wLog, kStar)
	wLin := compiter.Collect(compiter.LinSpace(lo, hi, linRefineSteps))
	refineSeq := refine(wLin)

	best := minVal
	refineSeq.Each(func(i int, x float64) bool {
		if x < best {
			best = x
			if bounds != nil {
				bounds.Observe(wLin[i])
			}
		}
		return true
	})
	return best
}

// Slow minimizes phi := N(w)/D(w) given numerator samples on the log grid
// plus callables D(w) and phi(w), matching the legacy entry point callers
// that haven't built a lazy sequence still need.
func Slow(wLog, numerator []float64, d func(w float64) float64, phi func(w float64) float64, bounds *diag.WBounds) float64 {
	kStar := -1
	minVal := math.Inf(1)
	for i, w := range wLog {
		v := numerator[i] / d(w)
		if v < minVal {
			minVal = v
			kStar = i
		}
	}
	if kStar < 0 || kStar == len(wLog)-1 {
		return 0.0
	}

	lo, hi := refinementBracket(wLog, kStar)
	wLin := compiter.Collect(compiter.LinSpace(lo, hi, linRefineSteps))

	best := minVal
	for _, w := range wLin {
		v := phi(w)
		if v < best {
			best = v
			if bounds != nil {
				bounds.Observe(w)
			}
		}
	}
	return best
}

// scanMinIndex walks seq once, returning the index and value of the
// smallest element observed, or (-1, +Inf) for an empty sequence.
func scanMinIndex(seq compiter.Sequence) (int, float64) {
	kStar := -1
	minVal := math.Inf(1)
	seq.Each(func(i int, x float64) bool {
		if x < minVal {
			minVal = x
			kStar = i
		}
		return true
	})
	return kStar, minVal
}

// refinementBracket returns the [lo, hi] interval around wLog[kStar] to
// refine on: the neighbors on either side, or [w[0], w[1]] when the
// minimum landed at the first sample.
func refinementBracket(wLog []float64, kStar int) (lo, hi float64) {
	if kStar == 0 {
		return wLog[0], wLog[1]
	}
	return wLog[kStar-1], wLog[kStar+1]
}
