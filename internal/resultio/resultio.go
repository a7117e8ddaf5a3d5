// Package resultio serializes run results to JSON and writes them to the
// conventional output path, mirroring the wire schema exactly: one
// *JSON-suffixed struct per domain type, kept deliberately separate from
// the engine types so the wire format can be versioned independently of
// internal representations.
package resultio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/lineengine"
	"github.com/cwbudde/stabregion/internal/pregionset"
	"github.com/cwbudde/stabregion/internal/regionengine"
)

// RayJSON mirrors lineengine.Ray.
type RayJSON struct {
	Origin   [2]float64 `json:"origin"`
	Angle    float64    `json:"angle"`
	Length   float64    `json:"length"`
	Segments []float64  `json:"segments,omitempty"`
}

// RayFanJSON mirrors lineengine.RayFan.
type RayFanJSON struct {
	Origin [2]float64 `json:"origin"`
	Rays   []RayJSON  `json:"rays"`
	Nu     int        `json:"nu"`
}

// PRegionJSON mirrors pregionset.PRegion.
type PRegionJSON struct {
	Origin [2]float64 `json:"origin"`
	Radius float64    `json:"radius"`
	Depth  int        `json:"depth"`
}

// RegionJSON mirrors regionengine.Region.
type RegionJSON struct {
	Origin   [2]float64    `json:"origin"`
	PRegions []PRegionJSON `json:"pregions"`
	Nu       int           `json:"nu"`
}

// LimitsJSON mirrors catalog.Limits.
type LimitsJSON struct {
	P1Min float64 `json:"p1_min"`
	P1Max float64 `json:"p1_max"`
	P2Min float64 `json:"p2_min"`
	P2Max float64 `json:"p2_max"`
}

// LineDataJSON is the top-level object for a line-algorithm "data" run.
type LineDataJSON struct {
	RayFans    []RayFanJSON `json:"rayfans"`
	Limits     LimitsJSON   `json:"limits"`
	Parameters [2]string    `json:"parameters"`
}

// RegionDataJSON is the top-level object for a region-algorithm "data" run.
type RegionDataJSON struct {
	Regions    []RegionJSON `json:"regions"`
	Limits     LimitsJSON   `json:"limits"`
	Parameters [2]string    `json:"parameters"`
}

// PointResultJSON is one grid cell of a "nu" run.
type PointResultJSON struct {
	P  [2]float64 `json:"p"`
	Nu int        `json:"nu"`
}

// NuResultJSON is the top-level object for a "nu" run.
type NuResultJSON struct {
	PointResults []PointResultJSON `json:"point_results"`
	Limits       LimitsJSON        `json:"limits"`
	Parameters   [2]string         `json:"parameters"`
}

func limitsToJSON(l catalog.Limits) LimitsJSON {
	return LimitsJSON{P1Min: l.P1Min, P1Max: l.P1Max, P2Min: l.P2Min, P2Max: l.P2Max}
}

func parToArray(p catalog.Par) [2]float64 { return [2]float64{p.P1, p.P2} }

// RayFanToJSON converts one lineengine.RayFan into its wire form.
func RayFanToJSON(f lineengine.RayFan) RayFanJSON {
	rays := make([]RayJSON, len(f.Rays))
	for i, r := range f.Rays {
		rays[i] = RayJSON{
			Origin:   parToArray(r.Origin),
			Angle:    r.Angle,
			Length:   r.Length,
			Segments: r.Segments,
		}
	}
	return RayFanJSON{Origin: parToArray(f.Origin), Rays: rays, Nu: f.Nu}
}

// LineDataToJSON builds the top-level line "data" document.
func LineDataToJSON(fans []lineengine.RayFan, limits catalog.Limits, parameters [2]string) LineDataJSON {
	out := make([]RayFanJSON, len(fans))
	for i, f := range fans {
		out[i] = RayFanToJSON(f)
	}
	return LineDataJSON{RayFans: out, Limits: limitsToJSON(limits), Parameters: parameters}
}

// RegionToJSON converts one regionengine.Region into its wire form.
func RegionToJSON(r regionengine.Region) RegionJSON {
	prs := make([]PRegionJSON, len(r.PRegions))
	for i, p := range r.PRegions {
		prs[i] = pregionToJSON(p)
	}
	return RegionJSON{Origin: parToArray(r.Origin), PRegions: prs, Nu: r.Nu}
}

func pregionToJSON(p pregionset.PRegion) PRegionJSON {
	return PRegionJSON{Origin: parToArray(p.Center), Radius: p.Radius, Depth: p.Depth}
}

// RegionDataToJSON builds the top-level region "data" document.
func RegionDataToJSON(regions []regionengine.Region, limits catalog.Limits, parameters [2]string) RegionDataJSON {
	out := make([]RegionJSON, len(regions))
	for i, r := range regions {
		out[i] = RegionToJSON(r)
	}
	return RegionDataJSON{Regions: out, Limits: limitsToJSON(limits), Parameters: parameters}
}

// OutputPath returns the conventional persisted-result path for a given
// command/algorithm/config-name triple, with directories not yet created.
func OutputPath(command, algorithm, configName string) string {
	ext := "data"
	if command == "nu" {
		ext = "nudata"
	}
	return filepath.Join("..", "output", command, algorithm, configName+"."+ext)
}

// Write serializes v as indented JSON to OutputPath(command, algorithm,
// configName), creating parent directories as needed.
func Write(command, algorithm, configName string, v any) error {
	path := OutputPath(command, algorithm, configName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("resultio: creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("resultio: encoding result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("resultio: writing result: %w", err)
	}
	return nil
}
