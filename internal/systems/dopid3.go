package systems

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
)

// dopid3VI is the fixed integral gain of the DOPID3 family.
const dopid3VI = 1.0

// DOPID3 is
//
//	f(s; p) = s*ln(s)^2*(s+1)^VI + exp(-s*tau)*((vp*s-VI)*ln(s) + (VI-vp)*(s-1))
//
// parameterized by (vp, tau), VI fixed at 1. Since |exp(-s*tau)|=1 on the
// imaginary axis for real tau,
//
//	df/dvp  = exp(-s*tau) * (s*ln(s) - s + 1)                 => |df/dvp| = |s*ln(s)-s+1|
//	df/dtau = -s*exp(-s*tau) * ((vp*s-VI)*ln(s) + (VI-vp)*(s-1))
//
// the bracket in df/dtau is affine in vp, so its modulus over the eps-ball
// is maximized at one of the two interval endpoints.
func DOPID3() catalog.System {
	return catalog.System{
		Name:       "dopid3",
		Parameters: [2]string{"vp", "tau"},
		F:          dopid3F,

		RegionFractionPrecalcNumerator: dopid3RegionFractionPrecalc,
		RegionFraction:                 dopid3RegionFraction,
	}
}

func dopid3F(s complex128, p catalog.Par) complex128 {
	vp := complex(p.P1, 0)
	tau := complex(p.P2, 0)
	VI := complex(dopid3VI, 0)
	ln := cmplx.Log(s)
	return s*ln*ln*cmplx.Pow(s+1, VI) + cmplx.Exp(-s*tau)*((vp*s-VI)*ln+(VI-vp)*(s-1))
}

func dopid3BracketAbs(s complex128, vp float64) float64 {
	VI := complex(dopid3VI, 0)
	ln := cmplx.Log(s)
	bracket := complex(vp, 0)*(s*ln-(s-1)) + VI*((s-1)-ln)
	return cmplx.Abs(bracket)
}

func dopid3Denominator(w float64, origin catalog.Par, eps float64) float64 {
	s := complex(0, w)
	ln := cmplx.Log(s)

	d1 := cmplx.Abs(s*ln - s + 1)

	vpMin := origin.P1 - eps
	vpMax := origin.P1 + eps
	d2 := w * math.Max(dopid3BracketAbs(s, vpMin), dopid3BracketAbs(s, vpMax))

	return math.Sqrt(d1*d1 + d2*d2)
}

func dopid3RegionFractionPrecalc(numerator, wLog []float64, origin catalog.Par, eps float64) compiter.Sequence {
	return &ratioOverSlice{num: numerator, w: wLog, denom: func(w float64) float64 {
		return dopid3Denominator(w, origin, eps)
	}}
}

func dopid3RegionFraction(wLin []float64, origin catalog.Par, eps float64) compiter.Sequence {
	num := make([]float64, len(wLin))
	for i, w := range wLin {
		num[i] = cmplx.Abs(dopid3F(complex(0, w), origin))
	}
	return &ratioOverSlice{num: num, w: wLin, denom: func(w float64) float64 {
		return dopid3Denominator(w, origin, eps)
	}}
}
