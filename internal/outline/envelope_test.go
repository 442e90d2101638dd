package outline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/floorplan-mcp/internal/geometry"
)

func TestEnvelope(t *testing.T) {
	unit := Plan{
		OverallDimensions: Dimensions{Width: 1000, Height: 1000},
		Spaces:            []Space{space("living", 0, 0, 1000, 1000)},
	}

	res := Envelope([]Placement{
		{Name: "101", Offset: geometry.Point{X: 0, Z: 0}, Plan: unit},
		{Name: "102", Offset: geometry.Point{X: 2000, Z: 0}, Plan: unit},
	})

	if res.Units != 2 {
		t.Errorf("Units: got %d, want 2", res.Units)
	}
	want := pts(-500, -500, 2500, -500, 2500, 500, -500, 500)
	if len(res.Hull) != len(want) {
		t.Fatalf("hull: got %v, want %v", res.Hull, want)
	}
	for i := range want {
		if res.Hull[i] != want[i] {
			t.Errorf("hull[%d]: got %v, want %v", i, res.Hull[i], want[i])
		}
	}
	if res.Area != 3000*1000 {
		t.Errorf("Area: got %v, want 3e6", res.Area)
	}
}

func TestEnvelope_Empty(t *testing.T) {
	res := Envelope(nil)
	if res.Hull == nil || len(res.Hull) != 0 || res.Area != 0 {
		t.Errorf("got %+v, want empty hull", res)
	}
}

func TestLoadPlacements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placements.json")
	data := `[{"name":"A","offset":{"x":10,"z":20},"plan":{"overallDimensions":{"width":100,"height":100},"spaces":[{"type":"core","startCoordinate":[0,0],"endCoordinate":[100,100]}]}}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write placements: %v", err)
	}

	placements, err := LoadPlacements(path)
	if err != nil {
		t.Fatalf("LoadPlacements failed: %v", err)
	}
	if len(placements) != 1 || placements[0].Offset.X != 10 || len(placements[0].Plan.Spaces) != 1 {
		t.Errorf("unexpected placements %+v", placements)
	}

	if _, err := LoadPlacements(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadPlacements should fail for a missing file")
	}
}
