// Package winding computes the winding number nu(p): the count of
// right-half-plane zeros of a system's characteristic function, via the
// argument principle along a right-shifted Bromwich contour.
package winding

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
)

// SafetyOffset nudges the Bromwich contour off the imaginary axis so a
// purely imaginary zero of f never lands exactly on a sample point.
const SafetyOffset = 1e-3

// ErrNonFinite is returned when the winding integral encounters a
// non-finite argument sample, signaling a broken f or a degenerate
// contour.
var ErrNonFinite = errors.New("winding: non-finite sample on contour")

// Nu computes the winding number of sys.F(.; p) over the right half-plane,
// sampling the contour described by cc.
func Nu(sys catalog.System, p catalog.Par, cc catalog.ContourConfiguration) (int, error) {
	contour := buildContour(cc)

	integral := 0.0
	var prevArg float64
	haveArg := false

	for _, s := range contour {
		v := sys.F(s, p)
		a := cmplx.Phase(v)
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return 0, fmt.Errorf("%w: f(%v;%v) = %v", ErrNonFinite, s, p, v)
		}
		if haveArg {
			integral += argIncrement(a - prevArg)
		}
		prevArg = a
		haveArg = true
	}

	if math.IsNaN(integral) || math.IsInf(integral, 0) {
		return 0, fmt.Errorf("%w: winding integral diverged", ErrNonFinite)
	}

	return int(math.Round(-integral / (2 * math.Pi))), nil
}

// argIncrement maps a raw consecutive-sample argument delta to its
// contribution to the unwrapped winding integral, per the branch table of
// the argument-principle accumulation.
func argIncrement(delta float64) float64 {
	switch {
	case delta > 0 && delta < math.Pi:
		return delta
	case delta >= math.Pi:
		return -(2*math.Pi - delta)
	case delta <= 0 && delta > -math.Pi:
		return -math.Abs(delta)
	default: // delta <= -math.Pi
		return 2*math.Pi - math.Abs(delta)
	}
}

// buildContour returns the right-shifted Bromwich contour: the upper
// imaginary branch (log-spaced), the closing right semicircle, and the
// lower imaginary branch (mirrored, traversed in reverse), all offset by
// SafetyOffset into the right half-plane.
func buildContour(cc catalog.ContourConfiguration) []complex128 {
	wLog := compiter.Collect(compiter.LogSpace(cc.WMin, cc.WMax, cc.Steps))
	thetas := compiter.Collect(compiter.LinSpace(math.Pi/2, -math.Pi/2, cc.Steps))

	contour := make([]complex128, 0, 3*cc.Steps)

	for _, w := range wLog {
		contour = append(contour, complex(SafetyOffset, w))
	}

	for _, theta := range thetas {
		contour = append(contour, complex(SafetyOffset, 0)+cmplx.Rect(cc.WMax, theta))
	}

	for i := len(wLog) - 1; i >= 0; i-- {
		contour = append(contour, complex(SafetyOffset, -wLog[i]))
	}

	return contour
}
