package geo

import (
	"math"
	"testing"

	"github.com/Flokey82/go_gens/vectors"
)

func TestTerrainConfigCorrect(t *testing.T) {
	c := &TerrainConfig{GridSize: 42, Iterations: -3, WaterRatio: 1.5}
	c.Correct()
	if c.GridSize != 10 || c.Iterations != 0 || c.WaterRatio != 1 {
		t.Fatalf("not clamped: %+v", c)
	}
	if c.Axis != (vectors.Vec3{Z: 1}) {
		t.Fatalf("zero axis corrected to %v", c.Axis)
	}

	c = &TerrainConfig{GridSize: -1, Axis: vectors.Vec3{X: 3, Y: 4}, WaterRatio: -0.2}
	c.Correct()
	if c.GridSize != 0 || c.WaterRatio != 0 {
		t.Fatalf("not clamped: %+v", c)
	}
	if math.Abs(c.Axis.Len()-1) > 1e-12 || math.Abs(c.Axis.X-0.6) > 1e-12 {
		t.Fatalf("axis not normalized: %v", c.Axis)
	}
}

func TestClimateConfigCorrect(t *testing.T) {
	c := &ClimateConfig{Seasons: 0, AxialTilt: 4, ErrorTolerance: 0}
	c.Correct()
	if c.Seasons != 1 || c.AxialTilt != math.Pi/2 || c.ErrorTolerance != 0.001 {
		t.Fatalf("not clamped: %+v", c)
	}
	c = &ClimateConfig{Seasons: 4, AxialTilt: -1, ErrorTolerance: 7}
	c.Correct()
	if c.Seasons != 4 || c.AxialTilt != 0 || c.ErrorTolerance != 1 {
		t.Fatalf("not clamped: %+v", c)
	}
}

func TestDefaultsAreLegal(t *testing.T) {
	tc := NewTerrainConfig()
	want := *tc
	tc.Correct()
	if *tc != want {
		t.Errorf("default terrain config changed by Correct: %+v", tc)
	}
	cc := NewClimateConfig()
	wantC := *cc
	cc.Correct()
	if *cc != wantC {
		t.Errorf("default climate config changed by Correct: %+v", cc)
	}
}
