package systems

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
)

// Physical constants of the finite-rod heat-conduction model: thermal
// diffusivity-scaled rod length L, sensor position X, and the conductivity
// and diffusivity constants used in the sqrt(s/sigma) argument of the
// hyperbolic terms.
const (
	finiteRodLambda = 237.0
	finiteRodSigma  = 98.8e-6
	finiteRodX      = 0.15
	finiteRodL      = 0.20
	finiteRodLMX    = finiteRodL - finiteRodX
)

// FiniteRod is a boundary-controlled finite-rod heat equation, linearized
// around a feedback gain pair (p1, p2):
//
//	mu(s)  = sqrt(s/sigma)
//	f(s;p) = cosh(mu(s)*L) + p1*mu(s)*sinh(mu(s)*X) + p2*cosh(mu(s)*LMX)
//
// f is affine in both p1 and p2, so its partial derivatives are
// parameter-free: df/dp1 = mu(s)*sinh(mu(s)*X), df/dp2 = cosh(mu(s)*LMX).
// That gives exact (not merely conservative) bounds for both the region
// gradient norm and, via the triangle inequality over the unit direction
// (cos theta, sin theta), the line denominator.
func FiniteRod() catalog.System {
	return catalog.System{
		Name:       "finite_rod",
		Parameters: [2]string{"p1", "p2"},
		F:          finiteRodF,

		LineDenominator:                finiteRodLineDenominator,
		RegionFractionPrecalcNumerator: finiteRodRegionFractionPrecalc,
		RegionFraction:                 finiteRodRegionFraction,
	}
}

func finiteRodMu(s complex128) complex128 {
	return cmplx.Sqrt(s / complex(finiteRodSigma, 0))
}

func finiteRodF(s complex128, p catalog.Par) complex128 {
	mu := finiteRodMu(s)
	p1 := complex(p.P1, 0)
	p2 := complex(p.P2, 0)
	return cmplx.Cosh(mu*finiteRodL) + p1*mu*cmplx.Sinh(mu*finiteRodX) + p2*cmplx.Cosh(mu*finiteRodLMX)
}

func finiteRodPartials(w float64) (dp1, dp2 float64) {
	s := complex(0, w)
	mu := finiteRodMu(s)
	dp1 = cmplx.Abs(mu * cmplx.Sinh(mu*finiteRodX))
	dp2 = cmplx.Abs(cmplx.Cosh(mu * finiteRodLMX))
	return dp1, dp2
}

func finiteRodDenominator(w float64) float64 {
	dp1, dp2 := finiteRodPartials(w)
	return math.Sqrt(dp1*dp1 + dp2*dp2)
}

func finiteRodLineDenominator(w float64, _ catalog.Par, theta, _, _ float64) float64 {
	dp1, dp2 := finiteRodPartials(w)
	return math.Abs(math.Cos(theta))*dp1 + math.Abs(math.Sin(theta))*dp2
}

func finiteRodRegionFractionPrecalc(numerator, wLog []float64, _ catalog.Par, _ float64) compiter.Sequence {
	return &ratioOverSlice{num: numerator, w: wLog, denom: finiteRodDenominator}
}

func finiteRodRegionFraction(wLin []float64, origin catalog.Par, _ float64) compiter.Sequence {
	num := make([]float64, len(wLin))
	for i, w := range wLin {
		num[i] = cmplx.Abs(finiteRodF(complex(0, w), origin))
	}
	return &ratioOverSlice{num: num, w: wLin, denom: finiteRodDenominator}
}
