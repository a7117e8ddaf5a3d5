package systems

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
)

// DistributedDelay1 is
//
//	f(s; p) = s^2 + s*k + 1 - exp(-tau*(s+k))
//
// parameterized by (tau, k), both assumed non-negative. On s=iw,
// |exp(-tau*(s+k))| = exp(-tau*k) regardless of w, so
//
//	|df/dtau| = |s+k| * exp(-tau*k) <= sqrt(w^2+k^2) * exp(-tau*k)
//	|df/dk|   = |s + tau*exp(-tau*(s+k))| <= w + tau*exp(-tau*k)
//
// Maximizing each bound over the eps-ball (tau,k in [origin-eps,
// origin+eps], both clamped to non-negative) means picking the largest k
// and smallest tau*k product; the combined gradient-norm bound below
// combines the two worst cases, which is conservative but certified.
func DistributedDelay1() catalog.System {
	return catalog.System{
		Name:       "distributed_delay1",
		Parameters: [2]string{"tau", "k"},
		F:          distributedDelay1F,

		RegionFractionPrecalcNumerator: distributedDelay1RegionFractionPrecalc,
		RegionFraction:                 distributedDelay1RegionFraction,
	}
}

func distributedDelay1F(s complex128, p catalog.Par) complex128 {
	tau := complex(p.P1, 0)
	k := complex(p.P2, 0)
	return s*s + s*k + 1 - cmplx.Exp(-tau*(s+k))
}

func distributedDelay1Denominator(w float64, origin catalog.Par, eps float64) float64 {
	tauMin := math.Max(origin.P1-eps, 0)
	kMin := math.Max(origin.P2-eps, 0)
	kMax := origin.P2 + eps
	tauMax := origin.P1 + eps

	decay := math.Exp(-tauMin * kMin)
	dTau := math.Sqrt(w*w+kMax*kMax) * decay
	dK := w + tauMax*decay
	return math.Sqrt(dTau*dTau + dK*dK)
}

func distributedDelay1RegionFractionPrecalc(numerator, wLog []float64, origin catalog.Par, eps float64) compiter.Sequence {
	return &ratioOverSlice{num: numerator, w: wLog, denom: func(w float64) float64 {
		return distributedDelay1Denominator(w, origin, eps)
	}}
}

func distributedDelay1RegionFraction(wLin []float64, origin catalog.Par, eps float64) compiter.Sequence {
	num := make([]float64, len(wLin))
	for i, w := range wLin {
		num[i] = cmplx.Abs(distributedDelay1F(complex(0, w), origin))
	}
	return &ratioOverSlice{num: num, w: wLin, denom: func(w float64) float64 {
		return distributedDelay1Denominator(w, origin, eps)
	}}
}
