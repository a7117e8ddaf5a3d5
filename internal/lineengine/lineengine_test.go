package lineengine

import (
	"context"
	"math"
	"testing"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/diag"
	"github.com/cwbudde/stabregion/internal/systems"
	"github.com/cwbudde/stabregion/internal/winding"
	"github.com/cwbudde/stabregion/internal/wspace"
)

func quadraticRHPConfig() catalog.LineConfiguration {
	return catalog.LineConfiguration{
		Name:    "quadratic_rhp/test",
		System:  systems.QuadraticRHP(),
		Limits:  catalog.Limits{P1Min: -2, P1Max: 2, P2Min: -2, P2Max: 2},
		Origins: []catalog.Par{{P1: 0.1, P2: 0.1}},

		Contour:   catalog.ContourConfiguration{WMin: 1e-3, WMax: 1e4, Steps: 2000},
		Delta:     catalog.AbsDelta(1e-3),
		Safeguard: 0.95,

		RayCount:      16,
		LogSpaceMinW:  1e-3,
		LogSpaceMaxW:  1e4,
		LogSpaceSteps: 2000,
	}
}

func TestSpawnAnglesSymmetricWhenSquare(t *testing.T) {
	limits := catalog.Limits{P1Min: 0, P1Max: 4, P2Min: 0, P2Max: 4}
	angles := spawnAngles(8, limits)
	for i := 0; i < 8; i++ {
		want := -math.Pi + 2*math.Pi*float64(i+1)/8
		if math.Abs(angles[i]-want) > 1e-9 {
			t.Errorf("angle[%d] = %v, want %v (identity rescale for square limits)", i, angles[i], want)
		}
	}
}

func TestSpawnAnglesRescaleForRectangle(t *testing.T) {
	limits := catalog.Limits{P1Min: 0, P1Max: 8, P2Min: 0, P2Max: 2}
	angles := spawnAngles(8, limits)
	seen := make(map[float64]bool)
	for _, a := range angles {
		if a <= -math.Pi || a > math.Pi {
			t.Errorf("angle %v outside (-pi, pi]", a)
		}
		seen[a] = true
	}
	if len(seen) != 8 {
		t.Errorf("expected 8 distinct angles, got %d", len(seen))
	}
}

func TestDeltaRel2AbsInfiniteAtZeroCos(t *testing.T) {
	limits := catalog.Limits{P1Min: 0, P1Max: 4, P2Min: 0, P2Max: 4}
	got := deltaRel2Abs(catalog.RelDelta(0.01), limits, math.Pi/2)
	if !math.IsInf(got, 1) {
		t.Fatalf("got %v, want +Inf", got)
	}
}

func TestRunProducesPositiveLengthRaysWithinLimits(t *testing.T) {
	cfg := quadraticRHPConfig()
	origin := cfg.Origins[0]

	nu, err := winding.Nu(cfg.System, origin, cfg.Contour)
	if err != nil {
		t.Fatalf("Nu: %v", err)
	}
	if nu != 0 {
		t.Fatalf("nu = %d, want 0 for this scenario", nu)
	}

	pool := wspace.NewPool()
	bounds := diag.NewWBounds()
	fan := Run(context.Background(), cfg, origin, nu, false, pool, bounds)

	if math.IsNaN(bounds.Min()) || math.IsNaN(bounds.Max()) {
		t.Errorf("expected (min_w, max_w) to be recorded during the run")
	}
	if len(fan.Rays) != cfg.RayCount {
		t.Fatalf("got %d rays, want %d", len(fan.Rays), cfg.RayCount)
	}
	for _, r := range fan.Rays {
		if r.Length <= 0 {
			t.Errorf("ray at angle %v has non-positive length %v", r.Angle, r.Length)
		}
		c, s := math.Cos(r.Angle), math.Sin(r.Angle)
		end := catalog.Par{P1: origin.P1 + r.Length*c, P2: origin.P2 + r.Length*s}
		if !cfg.Limits.Contains(end) {
			// allow tiny floating-point overshoot at the rectangle edge
			if cfg.Limits.DistanceToNearestSide(end) > 1e-6 {
				t.Errorf("ray endpoint %+v escaped limits %+v", end, cfg.Limits)
			}
		}
	}
}

func TestRunVerboseRecordsSegments(t *testing.T) {
	cfg := quadraticRHPConfig()
	origin := cfg.Origins[0]
	pool := wspace.NewPool()

	fan := Run(context.Background(), cfg, origin, 0, true, pool, nil)
	for _, r := range fan.Rays {
		if r.Segments == nil {
			t.Errorf("ray at angle %v missing segments in verbose mode", r.Angle)
		}
	}
}
