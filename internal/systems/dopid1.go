package systems

import (
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
)

// DOPID1 is a fractional-order PID loop characteristic function
//
//	f(s; p) = s*ln(s)^2*(s+1) + (vp*s - vi)*ln(s) + (vi-vp)*(s-1)
//
// parameterized by (vp, vi). No provably-valid line-denominator or
// region-fraction bound has been derived for this family; it is usable
// only as a winding-number (nu) system.
func DOPID1() catalog.System {
	return catalog.System{
		Name:       "dopid1",
		Parameters: [2]string{"vp", "vi"},
		F:          dopid1F,
	}
}

func dopid1F(s complex128, p catalog.Par) complex128 {
	vp := complex(p.P1, 0)
	vi := complex(p.P2, 0)
	ln := cmplx.Log(s)
	return s*ln*ln*(s+1) + (vp*s-vi)*ln + (vi-vp)*(s-1)
}
