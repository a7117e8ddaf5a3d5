package systems

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
)

// QuadraticRHP is the textbook quadratic
//
//	f(s; p) = s^2 + a*s + (a^2 + b - 1)
//
// with parameters (a, b). It carries both plug-in hooks: the line
// denominator bounds |df/dt(iw; p+t*(cos theta, sin theta))| over t in
// [thMin, thMax] via
//
//	sqrt(w^2 + 4*a_max^2) * |cos theta| + |sin theta|
//
// where a_max is the largest |a| the a-coordinate takes along the
// segment; the region fraction reuses the same bound with a_max = |a0|+eps.
func QuadraticRHP() catalog.System {
	return catalog.System{
		Name:       "quadratic_rhp",
		Parameters: [2]string{"a", "b"},
		F:          quadraticRHPF,

		LineDenominator:                quadraticRHPLineDenominator,
		RegionFractionPrecalcNumerator: quadraticRHPRegionFractionPrecalc,
		RegionFraction:                 quadraticRHPRegionFraction,
	}
}

func quadraticRHPF(s complex128, p catalog.Par) complex128 {
	a := complex(p.P1, 0)
	b := complex(p.P2, 0)
	return s*s + a*s + (a*a + b - 1)
}

func quadraticRHPLineDenominator(w float64, p catalog.Par, theta, thMin, thMax float64) float64 {
	c1, c2 := math.Cos(theta), math.Sin(theta)
	aMax := max(math.Abs(p.P1+c1*thMin), math.Abs(p.P1+c1*thMax))
	return math.Sqrt(w*w+4*aMax*aMax)*math.Abs(c1) + math.Abs(c2)
}

func quadraticRHPDenominator(w, aMax float64) float64 {
	derivA := math.Sqrt(w*w + 4*aMax*aMax)
	return math.Sqrt(derivA*derivA + 1)
}

func quadraticRHPRegionFractionPrecalc(numerator, wLog []float64, origin catalog.Par, eps float64) compiter.Sequence {
	aMax := math.Abs(origin.P1) + eps
	return &ratioOverSlice{num: numerator, w: wLog, denom: func(w float64) float64 {
		return quadraticRHPDenominator(w, aMax)
	}}
}

func quadraticRHPRegionFraction(wLin []float64, origin catalog.Par, eps float64) compiter.Sequence {
	aMax := math.Abs(origin.P1) + eps
	num := make([]float64, len(wLin))
	for i, w := range wLin {
		num[i] = cmplx.Abs(quadraticRHPF(complex(0, w), origin))
	}
	return &ratioOverSlice{num: num, w: wLin, denom: func(w float64) float64 {
		return quadraticRHPDenominator(w, aMax)
	}}
}
