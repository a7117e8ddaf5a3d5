// Package regionengine implements the region algorithm: a parallel
// breadth-first flood fill from an origin by overlapping certified disks
// (pregions), each disk's radius certified by the same Rouché predicate
// the line engine uses.
package regionengine

import (
	"context"
	"math"
	"sync"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
	"github.com/cwbudde/stabregion/internal/diag"
	"github.com/cwbudde/stabregion/internal/maximize"
	"github.com/cwbudde/stabregion/internal/minimize"
	"github.com/cwbudde/stabregion/internal/pregionset"
	"github.com/cwbudde/stabregion/internal/wpool"
	"github.com/cwbudde/stabregion/internal/wspace"
)

// defaultCapacity is the safety cap on total pregions published per
// region, guarding against runaway expansion on a misconfigured system.
const defaultCapacity = 9_999_999

// Region is every pregion published from a single origin's expansion,
// plus the origin's nu.
type Region struct {
	Origin   catalog.Par
	PRegions []pregionset.PRegion
	Nu       int
}

type seed struct {
	point catalog.Par
	depth int
}

// Run expands the breadth-first pregion flood fill from origin using p
// for parallel task dispatch, returning once the queue has drained (or
// cfg.MaxIter has truncated it). bounds, if non-nil, records the
// cross-goroutine (min_w, max_w) diagnostic per §4.4/§9.
func Run(ctx context.Context, cfg catalog.RegionConfiguration, origin catalog.Par, nu int, p *wpool.Pool, scratch *wspace.Pool, bounds *diag.WBounds) (Region, error) {
	set := pregionset.New(defaultCapacity)

	var wg sync.WaitGroup
	var submitErr error
	var errOnce sync.Once

	var spawn func(s seed)
	spawn = func(s seed) {
		defer wg.Done()

		if set.AtCapacity() {
			return
		}
		if set.Obsolete(s.point, s.depth, cfg.CheckObsoletion) {
			return
		}

		r := buildPRegion(cfg, s.point, s.depth, scratch, bounds)

		candidates := spawnEdgePoints(r, cfg.SpawnCount)
		candidates = set.FilterCandidates(candidates, cfg.Limits, cfg.EnforceLimits)

		// Re-check obsoletion immediately before publishing to tolerate the
		// benign race where another task published a covering pregion
		// between this task's initial check and now.
		if set.Obsolete(s.point, s.depth, cfg.CheckObsoletion) {
			return
		}
		set.Append(r)

		if cfg.MaxIter > 0 && s.depth >= cfg.MaxIter {
			return
		}
		if r.Radius <= absDelta(cfg.Delta, cfg.Limits) {
			return
		}

		// Children are handed to the pool from their own goroutines so a
		// worker never blocks in Submit waiting for a free worker.
		for _, c := range candidates {
			child := seed{point: c, depth: s.depth + 1}
			wg.Add(1)
			go func() {
				if err := p.Submit(ctx, func() { spawn(child) }); err != nil {
					errOnce.Do(func() { submitErr = err })
					wg.Done()
				}
			}()
		}
	}

	wg.Add(1)
	spawn(seed{point: origin, depth: 1})
	wg.Wait()

	if submitErr != nil {
		return Region{}, submitErr
	}
	return Region{Origin: origin, PRegions: set.Snapshot(), Nu: nu}, nil
}

// RunAll runs Run for every configured origin concurrently, blocking until
// every region has finished expanding. bounds, if non-nil, accumulates the
// (min_w, max_w) diagnostic across every origin and every worker goroutine.
func RunAll(ctx context.Context, cfg catalog.RegionConfiguration, nuOf func(catalog.Par) int, p *wpool.Pool, scratch *wspace.Pool, bounds *diag.WBounds) ([]Region, error) {
	regions := make([]Region, len(cfg.Origins))
	errs := make(chan error, len(cfg.Origins))

	for i, origin := range cfg.Origins {
		i, origin := i, origin
		// Each origin waits on its own expansion tree, so it runs on its own
		// goroutine rather than holding a pool worker that the tree needs.
		go func() {
			nu := nuOf(origin)
			region, err := Run(ctx, cfg, origin, nu, p, scratch, bounds)
			if err == nil {
				regions[i] = region
			}
			errs <- err
		}()
	}
	for range cfg.Origins {
		if err := <-errs; err != nil {
			return nil, err
		}
	}
	return regions, nil
}

func absDelta(delta catalog.Delta, limits catalog.Limits) float64 {
	if delta.IsAbsolute() {
		return delta.Abs()
	}
	return delta.Rel() * math.Max(limits.P1Span(), limits.P2Span())
}

func buildPRegion(cfg catalog.RegionConfiguration, q catalog.Par, depth int, scratch *wspace.Pool, bounds *diag.WBounds) pregionset.PRegion {
	limitEps := math.Inf(1)
	if cfg.EnforceLimits {
		limitEps = cfg.Limits.DistanceToNearestSide(q)
	}

	wLog := cfg.GetLogSpace()
	numerator := wspace.Magnitudes(scratch, cfg.System, q, wLog)

	pred := func(eps float64) bool {
		coarse := cfg.System.RegionFractionPrecalcNumerator(numerator, wLog, q, eps)
		bound := minimize.Fast(wLog, coarse, func(wLin []float64) compiter.Sequence {
			return cfg.System.RegionFraction(wLin, q, eps)
		}, bounds)
		return eps < bound
	}

	rHat := maximize.GetMaximumCondition(pred, 1e-6, limitEps)
	return pregionset.PRegion{Center: q, Radius: rHat * cfg.Safeguard, Depth: depth}
}

// spawnEdgePoints samples spawnCount candidate points evenly around r's
// circumference.
func spawnEdgePoints(r pregionset.PRegion, spawnCount int) []catalog.Par {
	out := make([]catalog.Par, spawnCount)
	for i := 0; i < spawnCount; i++ {
		theta := 2 * math.Pi * float64(i) / float64(spawnCount)
		out[i] = catalog.Par{
			P1: r.Center.P1 + r.Radius*math.Cos(theta),
			P2: r.Center.P2 + r.Radius*math.Sin(theta),
		}
	}
	return out
}
