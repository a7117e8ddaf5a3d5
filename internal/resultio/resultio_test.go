package resultio

import (
	"encoding/json"
	"testing"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/lineengine"
	"github.com/cwbudde/stabregion/internal/pregionset"
	"github.com/cwbudde/stabregion/internal/regionengine"
)

func TestOutputPathExtensions(t *testing.T) {
	if got := OutputPath("data", "line", "retarded1"); got != "../output/data/line/retarded1.data" {
		t.Fatalf("got %q", got)
	}
	if got := OutputPath("nu", "grid", "retarded1"); got != "../output/nu/grid/retarded1.nudata" {
		t.Fatalf("got %q", got)
	}
}

func TestRayFanRoundTrip(t *testing.T) {
	fan := lineengine.RayFan{
		Origin: catalog.Par{P1: 1, P2: 2},
		Rays: []lineengine.Ray{
			{Origin: catalog.Par{P1: 1, P2: 2}, Angle: 0.5, Length: 3.0, Segments: []float64{0, 1, 3}},
		},
		Nu: 2,
	}
	want := RayFanToJSON(fan)

	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got RayFanJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Origin != want.Origin || got.Nu != want.Nu || len(got.Rays) != 1 {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestRegionRoundTrip(t *testing.T) {
	region := regionengine.Region{
		Origin: catalog.Par{P1: 0.1, P2: 0.1},
		PRegions: []pregionset.PRegion{
			{Center: catalog.Par{P1: 0.1, P2: 0.1}, Radius: 0.5, Depth: 1},
		},
		Nu: 0,
	}
	want := RegionToJSON(region)

	data, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got RegionJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Origin != want.Origin || len(got.PRegions) != 1 || got.PRegions[0].Depth != 1 {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLineDataToJSONShape(t *testing.T) {
	limits := catalog.Limits{P1Min: 0, P1Max: 1, P2Min: 0, P2Max: 1}
	doc := LineDataToJSON(nil, limits, [2]string{"a", "b"})
	if doc.Limits.P1Max != 1 || doc.Parameters[1] != "b" {
		t.Fatalf("got %+v", doc)
	}
}
