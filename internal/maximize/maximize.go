// Package maximize implements the certified 1-D maximizer shared by the
// line and region engines: given a monotone admissibility predicate, find
// the largest step for which it still holds.
package maximize

import (
	"fmt"
	"math"
)

// consecutiveSuccessesThreshold is how many accepted steps in a row must
// land before the step size is allowed to double.
const consecutiveSuccessesThreshold = 3

// GetMaximumCondition returns the largest x in [0, limit] for which pred(x)
// holds, accurate to within minStep, via adaptive doubling/halving.
//
// pred must be monotone: pred(x) implies pred(y) for all y <= x. minStep
// must be positive; limit may be math.Inf(1).
//
// The search panics if floating-point progress becomes impossible
// (x+step == x for the current step): a broken or non-monotone predicate
// should surface here rather than loop forever.
func GetMaximumCondition(pred func(x float64) bool, minStep, limit float64) float64 {
	x := 0.0
	step := minStep * 1e3
	successes := 0
	afterFailure := false
	failAt := math.Inf(1) // smallest x at which pred has been seen to fail

	for {
		xTry := x + step
		if xTry > limit {
			xTry = limit
		}

		if xTry == x {
			panic(fmt.Sprintf("maximize: no floating-point progress possible at x=%v step=%v", x, step))
		}

		if pred(xTry) {
			x = xTry
			if afterFailure {
				step /= 2
				afterFailure = false
				successes = 0
			} else {
				successes++
				if successes >= consecutiveSuccessesThreshold {
					step *= 2
					successes = 0
				}
			}
		} else {
			failAt = math.Min(failAt, xTry)
			step /= 2
			successes = 0
			afterFailure = true
		}

		if x >= limit {
			return limit
		}
		if failAt-x <= minStep {
			return x
		}
	}
}
