package systems

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
)

// Retarded2 is the three-term retarded system
//
//	f(s; p) = s^2 + 1 + (s+2)*exp(-s*tau1) + sqrt(5)*exp(-s*tau2)
//
// Its gradient magnitude on the imaginary axis is again parameter-free:
// |df/dtau1(iw;p)| = w*|iw+2| = w*sqrt(w^2+4) and |df/dtau2(iw;p)| =
// sqrt(5)*w, giving the combined bound w*sqrt(w^2+9) used below. It has
// no line-denominator hook: the per-direction bound for this family was
// never derived in the source this system is taken from, so only the
// region algorithm can run on it.
func Retarded2() catalog.System {
	return catalog.System{
		Name:       "retarded2",
		Parameters: [2]string{"tau_1", "tau_2"},
		F:          retarded2F,

		RegionFractionPrecalcNumerator: retarded2RegionFractionPrecalc,
		RegionFraction:                 retarded2RegionFraction,
	}
}

func retarded2F(s complex128, p catalog.Par) complex128 {
	tau1 := complex(p.P1, 0)
	tau2 := complex(p.P2, 0)
	sqrt5 := complex(math.Sqrt(5), 0)
	return s*s + 1 + (s+2)*cmplx.Exp(-s*tau1) + sqrt5*cmplx.Exp(-s*tau2)
}

func retarded2Denominator(w float64) float64 {
	return w * math.Sqrt(w*w+9)
}

func retarded2RegionFractionPrecalc(numerator, wLog []float64, _ catalog.Par, _ float64) compiter.Sequence {
	return &ratioOverSlice{num: numerator, w: wLog, denom: retarded2Denominator}
}

func retarded2RegionFraction(wLin []float64, origin catalog.Par, _ float64) compiter.Sequence {
	num := make([]float64, len(wLin))
	for i, w := range wLin {
		num[i] = cmplx.Abs(retarded2F(complex(0, w), origin))
	}
	return &ratioOverSlice{num: num, w: wLin, denom: retarded2Denominator}
}
