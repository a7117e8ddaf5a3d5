package systems

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
)

// DOPID2 is
//
//	f(s; p) = s*ln(s)^2*(s+1)^nu + (vp*s - 1)*ln(s) + (1-vp)*(s-1)
//
// parameterized by (vp, nu). Its partial derivatives are
//
//	df/dvp = s*ln(s) - s + 1                          (parameter-free)
//	df/dnu = s*ln(s)^2*(s+1)^nu*ln(s+1)
//
// The second is monotone increasing in nu for the range of interest, so
// substituting nu_max = origin.nu+eps gives a certified sup bound over the
// eps-ball. No line-denominator hook is derived for this family.
func DOPID2() catalog.System {
	return catalog.System{
		Name:       "dopid2",
		Parameters: [2]string{"vp", "nu"},
		F:          dopid2F,

		RegionFractionPrecalcNumerator: dopid2RegionFractionPrecalc,
		RegionFraction:                 dopid2RegionFraction,
	}
}

func dopid2F(s complex128, p catalog.Par) complex128 {
	vp := complex(p.P1, 0)
	nu := complex(p.P2, 0)
	ln := cmplx.Log(s)
	return s*ln*ln*cmplx.Pow(s+1, nu) + (vp*s-1)*ln + (1-vp)*(s-1)
}

func dopid2Denominator(w float64, origin catalog.Par, eps float64) float64 {
	s := complex(0, w)
	ln := cmplx.Log(s)
	ln1 := cmplx.Log(s + 1)
	numax := complex(origin.P2+eps, 0)

	d1 := cmplx.Abs(s*ln - s + 1)
	d2 := cmplx.Abs(s * ln * ln * cmplx.Pow(s+1, numax) * ln1)
	return math.Sqrt(d1*d1 + d2*d2)
}

func dopid2RegionFractionPrecalc(numerator, wLog []float64, origin catalog.Par, eps float64) compiter.Sequence {
	return &ratioOverSlice{num: numerator, w: wLog, denom: func(w float64) float64 {
		return dopid2Denominator(w, origin, eps)
	}}
}

func dopid2RegionFraction(wLin []float64, origin catalog.Par, eps float64) compiter.Sequence {
	num := make([]float64, len(wLin))
	for i, w := range wLin {
		num[i] = cmplx.Abs(dopid2F(complex(0, w), origin))
	}
	return &ratioOverSlice{num: num, w: wLin, denom: func(w float64) float64 {
		return dopid2Denominator(w, origin, eps)
	}}
}
