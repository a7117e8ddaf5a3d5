package wspace

import (
	"math/cmplx"
	"testing"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/testutil"
)

func constSystem() catalog.System {
	return catalog.System{
		Name: "test",
		F: func(s complex128, p catalog.Par) complex128 {
			return s*s + complex(p.P1, 0)
		},
	}
}

func TestMagnitudesMatchesDirectComputation(t *testing.T) {
	pool := NewPool()
	sys := constSystem()
	p := catalog.Par{P1: 2.0, P2: 0.0}
	w := []float64{1.0, 2.0, 3.0}

	got := Magnitudes(pool, sys, p, w)
	want := make([]float64, len(w))
	for i, wi := range w {
		want[i] = cmplx.Abs(sys.F(complex(0, wi), p))
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	testutil.RequireFinite(t, got)
}

func TestBufferReuseAcrossCalls(t *testing.T) {
	pool := NewPool()
	sys := constSystem()
	p := catalog.Par{P1: 1.0}

	first := Magnitudes(pool, sys, p, []float64{1, 2, 3, 4, 5})
	second := Magnitudes(pool, sys, p, []float64{1, 2})

	if len(first) != 5 || len(second) != 2 {
		t.Fatalf("got lengths %d, %d, want 5, 2", len(first), len(second))
	}
}
