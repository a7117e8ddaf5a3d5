package systems

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
)

// Retarded1 is the two-delay retarded system
//
//	f(s; p) = s^2 + 2*s*exp(-s*tau1) + exp(-s*tau2)
//
// named `retarded1` in the original catalog, parameterized by (tau1, tau2).
// Its gradient with respect to each parameter, evaluated on the imaginary
// axis s=iw, is independent of p: |df/dtau1(iw;p)| = 2w^2 and
// |df/dtau2(iw;p)| = w, since exp(-iw*tau) has unit modulus for real tau.
// That makes the sup-bound over the eps-ball exact rather than merely
// conservative, and eps-independent.
func Retarded1() catalog.System {
	return catalog.System{
		Name:       "retarded1",
		Parameters: [2]string{"tau_1", "tau_2"},
		F:          retarded1F,

		RegionFractionPrecalcNumerator: retarded1RegionFractionPrecalc,
		RegionFraction:                 retarded1RegionFraction,
	}
}

func retarded1F(s complex128, p catalog.Par) complex128 {
	tau1 := complex(p.P1, 0)
	tau2 := complex(p.P2, 0)
	return s*s + 2*s*cmplx.Exp(-s*tau1) + cmplx.Exp(-s*tau2)
}

func retarded1Denominator(w float64) float64 {
	return w * math.Sqrt(4*w*w+1)
}

func retarded1RegionFractionPrecalc(numerator, wLog []float64, _ catalog.Par, _ float64) compiter.Sequence {
	return &ratioOverSlice{num: numerator, w: wLog, denom: retarded1Denominator}
}

func retarded1RegionFraction(wLin []float64, origin catalog.Par, _ float64) compiter.Sequence {
	num := make([]float64, len(wLin))
	for i, w := range wLin {
		num[i] = cmplx.Abs(retarded1F(complex(0, w), origin))
	}
	return &ratioOverSlice{num: num, w: wLin, denom: retarded1Denominator}
}
