package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/diag"
	"github.com/cwbudde/stabregion/internal/lineengine"
	"github.com/cwbudde/stabregion/internal/preset"
	"github.com/cwbudde/stabregion/internal/regionengine"
	"github.com/cwbudde/stabregion/internal/resultio"
	"github.com/cwbudde/stabregion/internal/winding"
	"github.com/cwbudde/stabregion/internal/wspace"
)

// customDefaultContour is used when no named configuration backs a custom
// run, since the system itself carries no contour of its own.
var customDefaultContour = catalog.ContourConfiguration{WMin: 1e-3, WMax: 1e5, Steps: 10_000}

// customOptions collects the ad-hoc flags specific to the custom
// subcommand, kept separate from CLI's persistent flags since they only
// make sense for a one-off run against a single origin.
type customOptions struct {
	p1, p2       float64
	p1Min, p1Max float64
	p2Min, p2Max float64
	safeguard    float64
	rayCount     int
	spawnCount   int
}

func (c *CLI) newCustomCommand() *cobra.Command {
	opts := &customOptions{safeguard: 0.95, rayCount: 8, spawnCount: 16}

	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Run one algorithm over a single ad-hoc origin, without a named catalog configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCustom(opts)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.p1, "p1", 0, "origin p1 coordinate")
	flags.Float64Var(&opts.p2, "p2", 0, "origin p2 coordinate")
	flags.Float64Var(&opts.p1Min, "p1-min", -10, "search rectangle p1 lower bound")
	flags.Float64Var(&opts.p1Max, "p1-max", 10, "search rectangle p1 upper bound")
	flags.Float64Var(&opts.p2Min, "p2-min", -10, "search rectangle p2 lower bound")
	flags.Float64Var(&opts.p2Max, "p2-max", 10, "search rectangle p2 upper bound")
	flags.Float64Var(&opts.safeguard, "safeguard", opts.safeguard, "deflation factor applied to certified radii/lengths")
	flags.IntVar(&opts.rayCount, "rays", opts.rayCount, "number of rays for the line algorithm")
	flags.IntVar(&opts.spawnCount, "spawn", opts.spawnCount, "number of candidate points per pregion for the region algorithm")

	return cmd
}

func (c *CLI) runCustom(opts *customOptions) error {
	if c.system == "" {
		return fmt.Errorf("custom: --system is required")
	}
	algo, err := parseAlgorithm(c.algorithm)
	if err != nil {
		return fmt.Errorf("custom: %w", err)
	}

	sys, err := preset.LookupSystem(c.system)
	if err != nil {
		return err
	}

	origin := catalog.Par{P1: opts.p1, P2: opts.p2}
	limits := catalog.Limits{P1Min: opts.p1Min, P1Max: opts.p1Max, P2Min: opts.p2Min, P2Max: opts.p2Max}
	if !limits.Contains(origin) {
		return fmt.Errorf("custom: %w: origin %+v outside %+v", catalog.ErrOriginOutOfLimits, origin, limits)
	}

	ctx := context.Background()
	p := c.pool()
	defer p.Shutdown()
	scratch := wspace.NewPool()

	nu, err := winding.Nu(sys, origin, customDefaultContour)
	if err != nil {
		return fmt.Errorf("custom: %w", err)
	}

	switch algo {
	case catalog.AlgorithmLine:
		if err := catalog.RequireCapability(sys, catalog.AlgorithmLine); err != nil {
			return err
		}
		cfg := catalog.LineConfiguration{
			Name:    "custom",
			System:  sys,
			Limits:  limits,
			Origins: []catalog.Par{origin},

			Contour:   customDefaultContour,
			Delta:     catalog.AbsDelta(1e-3),
			Safeguard: opts.safeguard,

			RayCount:      opts.rayCount,
			LogSpaceMinW:  customDefaultContour.WMin,
			LogSpaceMaxW:  customDefaultContour.WMax,
			LogSpaceSteps: customDefaultContour.Steps,
		}

		bounds := diag.NewWBounds()
		fan := lineengine.Run(ctx, cfg, origin, nu, c.verboseData, scratch, bounds)
		doc := resultio.LineDataToJSON([]lineengine.RayFan{fan}, limits, sys.Parameters)
		if err := resultio.Write("custom", "line", c.system, doc); err != nil {
			return err
		}
		slog.Info("custom line run complete", "system", c.system, "min_w", bounds.Min(), "max_w", bounds.Max())

	case catalog.AlgorithmRegion:
		if err := catalog.RequireCapability(sys, catalog.AlgorithmRegion); err != nil {
			return err
		}
		cfg := catalog.RegionConfiguration{
			Name:    "custom",
			System:  sys,
			Limits:  limits,
			Origins: []catalog.Par{origin},

			Contour:   customDefaultContour,
			Delta:     catalog.AbsDelta(1e-3),
			Safeguard: opts.safeguard,

			SpawnCount:      opts.spawnCount,
			EnforceLimits:   true,
			MaxIter:         0,
			CheckObsoletion: true,

			LogSpaceMinW:  customDefaultContour.WMin,
			LogSpaceMaxW:  customDefaultContour.WMax,
			LogSpaceSteps: customDefaultContour.Steps,
		}

		bounds := diag.NewWBounds()
		region, err := regionengine.Run(ctx, cfg, origin, nu, p, scratch, bounds)
		if err != nil {
			return fmt.Errorf("custom: region run failed: %w", err)
		}
		doc := resultio.RegionDataToJSON([]regionengine.Region{region}, limits, sys.Parameters)
		if err := resultio.Write("custom", "region", c.system, doc); err != nil {
			return err
		}
		slog.Info("custom region run complete", "system", c.system, "min_w", bounds.Min(), "max_w", bounds.Max())

	default:
		return fmt.Errorf("custom: unsupported algorithm %q", c.algorithm)
	}

	return nil
}
