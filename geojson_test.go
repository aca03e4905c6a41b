package earthgen

import (
	"context"
	"errors"
	"testing"

	geojson "github.com/paulmach/go.geojson"
)

func TestSplitAtAntimeridian(t *testing.T) {
	line := [][]float64{{170, 0}, {179, 1}, {-179, 2}, {-170, 3}, {-160, 3}, {175, 4}}
	pieces := splitAtAntimeridian(line)
	if len(pieces) != 2 || len(pieces[0]) != 2 || len(pieces[1]) != 3 {
		t.Fatalf("unexpected pieces %v", pieces)
	}
	if pieces[1][0][0] != -179 {
		t.Errorf("second piece starts at %v", pieces[1][0])
	}
}

func TestGeoJSONRivers(t *testing.T) {
	p := NewPlanet()
	if _, err := p.GeoJSON("rivers"); err == nil {
		t.Fatal("expected an error without terrain")
	}
	cfg := smallConfig()
	cfg.GridSize = 3
	if err := p.Generate(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	rivers := 0
	for i := range p.Grid.Corners {
		if p.Terrain.RiverOfCorner(p.Grid, i).Exists() {
			rivers++
		}
	}
	if rivers == 0 {
		t.Fatal("planet has no rivers")
	}

	data, err := p.GeoJSON("rivers")
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatal(err)
	}
	segments := 0
	for _, f := range fc.Features {
		if !f.Geometry.IsLineString() {
			t.Fatalf("river geometry %s", f.Geometry.Type)
		}
		segments += len(f.Geometry.LineString) - 1
		for _, pos := range f.Geometry.LineString {
			if pos[0] < -180 || pos[0] > 180 || pos[1] < -90 || pos[1] > 90 {
				t.Fatalf("position out of range: %v", pos)
			}
		}
	}
	// Only segments crossing the antimeridian may be missing.
	if segments > rivers || segments < rivers*9/10 {
		t.Fatalf("%d river segments encoded for %d rivers", segments, rivers)
	}
}

func TestGeoJSONCoast(t *testing.T) {
	p := NewPlanet()
	cfg := smallConfig()
	cfg.GridSize = 3
	if err := p.Generate(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	data, err := p.GeoJSON("coast")
	if err != nil {
		t.Fatal(err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 1 || !fc.Features[0].Geometry.IsMultiLineString() {
		t.Fatalf("expected one multi line string, got %d features", len(fc.Features))
	}
	if n := len(fc.Features[0].Geometry.MultiLineString); n == 0 {
		t.Fatal("no coast edges")
	}

	if _, err := p.GeoJSON("borders"); !errors.Is(err, ErrUnknownFeatures) {
		t.Fatalf("expected ErrUnknownFeatures, got %v", err)
	}
}
