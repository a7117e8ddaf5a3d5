package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/compiter"
	"github.com/cwbudde/stabregion/internal/preset"
	"github.com/cwbudde/stabregion/internal/resultio"
	"github.com/cwbudde/stabregion/internal/winding"
)

// nuGridSteps is the coarse per-axis resolution of the grid the nu
// subcommand sweeps over the configured rectangle.
const nuGridSteps = 20

func (c *CLI) newNuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nu",
		Short: "Run only the winding-number engine on a coarse grid of the configured rectangle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runNu()
		},
	}
}

func (c *CLI) runNu() error {
	if c.system == "" {
		return fmt.Errorf("nu: --system is required")
	}

	sys, err := preset.LookupSystem(c.system)
	if err != nil {
		return err
	}

	limits, contour, err := c.resolveNuDomain()
	if err != nil {
		return err
	}

	p1Grid := compiter.Collect(compiter.LinSpace(limits.P1Min, limits.P1Max, nuGridSteps))
	p2Grid := compiter.Collect(compiter.LinSpace(limits.P2Min, limits.P2Max, nuGridSteps))

	results := make([]resultio.PointResultJSON, 0, len(p1Grid)*len(p2Grid))
	for _, p1 := range p1Grid {
		for _, p2 := range p2Grid {
			p := catalog.Par{P1: p1, P2: p2}
			nu, err := winding.Nu(sys, p, contour)
			if err != nil {
				slog.Error("nu computation failed", "point", p, "error", err)
				return err
			}
			results = append(results, resultio.PointResultJSON{P: [2]float64{p1, p2}, Nu: nu})
		}
	}

	doc := resultio.NuResultJSON{
		PointResults: results,
		Limits: resultio.LimitsJSON{
			P1Min: limits.P1Min, P1Max: limits.P1Max,
			P2Min: limits.P2Min, P2Max: limits.P2Max,
		},
		Parameters: sys.Parameters,
	}

	if err := resultio.Write("nu", "grid", c.system, doc); err != nil {
		return err
	}
	slog.Info("nu grid complete", "system", c.system, "points", len(results))
	return nil
}

// resolveNuDomain picks whichever named configuration (line or region) the
// system key resolves to, since nu only needs limits and a contour, not
// the rest of either configuration.
func (c *CLI) resolveNuDomain() (catalog.Limits, catalog.ContourConfiguration, error) {
	if cfg, err := preset.LookupLineConfig(c.system + "/default"); err == nil {
		return cfg.Limits, cfg.Contour, nil
	}
	if cfg, err := preset.LookupRegionConfig(c.system + "/default"); err == nil {
		return cfg.Limits, cfg.Contour, nil
	}
	return catalog.Limits{}, catalog.ContourConfiguration{}, fmt.Errorf("nu: no configuration named %q/default", c.system)
}
