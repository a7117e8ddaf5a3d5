package regionengine

import (
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/diag"
	"github.com/cwbudde/stabregion/internal/systems"
	"github.com/cwbudde/stabregion/internal/winding"
	"github.com/cwbudde/stabregion/internal/wpool"
	"github.com/cwbudde/stabregion/internal/wspace"
)

func quadraticRHPRegionConfig() catalog.RegionConfiguration {
	return catalog.RegionConfiguration{
		Name:    "quadratic_rhp/test",
		System:  systems.QuadraticRHP(),
		Limits:  catalog.Limits{P1Min: -2, P1Max: 2, P2Min: -2, P2Max: 2},
		Origins: []catalog.Par{{P1: 0.1, P2: 0.1}},

		Contour:   catalog.ContourConfiguration{WMin: 1e-3, WMax: 1e4, Steps: 2000},
		Delta:     catalog.AbsDelta(1e-3),
		Safeguard: 0.95,

		SpawnCount:      32,
		EnforceLimits:   true,
		MaxIter:         3,
		CheckObsoletion: true,

		LogSpaceMinW:  1e-3,
		LogSpaceMaxW:  1e4,
		LogSpaceSteps: 2000,
	}
}

func TestRunProducesPRegionsWithMatchingNu(t *testing.T) {
	cfg := quadraticRHPRegionConfig()
	origin := cfg.Origins[0]

	nu, err := winding.Nu(cfg.System, origin, cfg.Contour)
	require.NoError(t, err)

	pool := wpool.New(slog.Default())
	defer pool.Shutdown()
	scratch := wspace.NewPool()

	bounds := diag.NewWBounds()
	region, err := Run(context.Background(), cfg, origin, nu, pool, scratch, bounds)
	require.NoError(t, err)
	require.NotEmpty(t, region.PRegions, "expected at least the origin's own pregion")
	assert.False(t, math.IsNaN(bounds.Min()), "expected (min_w, max_w) to be recorded during the run")

	foundDepth1 := false
	for _, r := range region.PRegions {
		if r.Depth == 1 {
			foundDepth1 = true
		}
		got, err := winding.Nu(cfg.System, r.Center, cfg.Contour)
		require.NoError(t, err)
		assert.Equal(t, nu, got, "pregion center %+v should share the origin's nu", r.Center)
	}
	assert.True(t, foundDepth1, "expected at least one depth-1 pregion (the origin's own)")
}

// TestRunAllCompletesConcurrentlyWithoutRace spawns the breadth-first
// expansion tree for several origins at once through a shared pool and
// requires the whole batch to drain within a generous deadline, exercising
// the same worker pool / WaitGroup fan-out concurrently across origins
// rather than one at a time.
func TestRunAllCompletesConcurrentlyWithoutRace(t *testing.T) {
	cfg := quadraticRHPRegionConfig()
	cfg.Origins = []catalog.Par{
		{P1: 0.1, P2: 0.1},
		{P1: -0.5, P2: 0.5},
		{P1: 0.5, P2: -0.5},
	}

	pool := wpool.New(slog.Default())
	defer pool.Shutdown()
	scratch := wspace.NewPool()

	nuOf := func(p catalog.Par) int {
		nu, err := winding.Nu(cfg.System, p, cfg.Contour)
		require.NoError(t, err)
		return nu
	}

	done := make(chan []Region, 1)
	go func() {
		regions, err := RunAll(context.Background(), cfg, nuOf, pool, scratch, nil)
		require.NoError(t, err)
		done <- regions
	}()

	require.Eventually(t, func() bool {
		select {
		case regions := <-done:
			done <- regions
			return true
		default:
			return false
		}
	}, 10*time.Second, 10*time.Millisecond, "RunAll did not complete within deadline")

	regions := <-done
	require.Len(t, regions, len(cfg.Origins))
	for i, r := range regions {
		assert.NotEmpty(t, r.PRegions, "origin %+v produced no pregions", cfg.Origins[i])
	}
}
