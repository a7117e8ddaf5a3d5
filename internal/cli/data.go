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
	"github.com/cwbudde/stabregion/internal/wpool"
	"github.com/cwbudde/stabregion/internal/wspace"
)

func (c *CLI) newDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Run the line or region algorithm on the configured origins",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runData()
		},
	}
}

func (c *CLI) runData() error {
	if c.system == "" {
		return fmt.Errorf("data: --system is required")
	}
	algo, err := parseAlgorithm(c.algorithm)
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}

	ctx := context.Background()
	p := c.pool()
	defer p.Shutdown()
	scratch := wspace.NewPool()

	switch algo {
	case catalog.AlgorithmLine:
		return c.runLineData(ctx, p, scratch)
	case catalog.AlgorithmRegion:
		return c.runRegionData(ctx, p, scratch)
	default:
		return fmt.Errorf("data: unsupported algorithm %q", c.algorithm)
	}
}

func (c *CLI) pool() *wpool.Pool {
	return wpool.New(slog.Default())
}

func (c *CLI) runLineData(ctx context.Context, p *wpool.Pool, scratch *wspace.Pool) error {
	cfg, err := preset.LookupLineConfig(c.system)
	if err != nil {
		return err
	}
	if err := catalog.RequireCapability(cfg.System, catalog.AlgorithmLine); err != nil {
		return err
	}

	nuOf := func(origin catalog.Par) int {
		nu, err := winding.Nu(cfg.System, origin, cfg.Contour)
		if err != nil {
			panic(err)
		}
		return nu
	}

	bounds := diag.NewWBounds()
	fans, err := lineengine.RunAll(ctx, cfg, nuOf, c.verboseData, p, scratch, bounds)
	if err != nil {
		return fmt.Errorf("data: line run failed: %w", err)
	}

	doc := resultio.LineDataToJSON(fans, cfg.Limits, cfg.System.Parameters)
	if err := resultio.Write("data", "line", cfg.Name, doc); err != nil {
		return err
	}
	slog.Info("line data complete", "config", cfg.Name, "rayfans", len(fans), "min_w", bounds.Min(), "max_w", bounds.Max())
	return nil
}

func (c *CLI) runRegionData(ctx context.Context, p *wpool.Pool, scratch *wspace.Pool) error {
	cfg, err := preset.LookupRegionConfig(c.system)
	if err != nil {
		return err
	}
	if err := catalog.RequireCapability(cfg.System, catalog.AlgorithmRegion); err != nil {
		return err
	}

	nuOf := func(origin catalog.Par) int {
		nu, err := winding.Nu(cfg.System, origin, cfg.Contour)
		if err != nil {
			panic(err)
		}
		return nu
	}

	bounds := diag.NewWBounds()
	regions, err := regionengine.RunAll(ctx, cfg, nuOf, p, scratch, bounds)
	if err != nil {
		return fmt.Errorf("data: region run failed: %w", err)
	}

	doc := resultio.RegionDataToJSON(regions, cfg.Limits, cfg.System.Parameters)
	if err := resultio.Write("data", "region", cfg.Name, doc); err != nil {
		return err
	}
	slog.Info("region data complete", "config", cfg.Name, "regions", len(regions), "min_w", bounds.Min(), "max_w", bounds.Max())
	return nil
}
