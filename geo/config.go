package geo

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/geodesic"
	"github.com/dmchurch/earthgen/various"
)

// TerrainConfig holds all configuration options for terrain generation.
type TerrainConfig struct {
	GridSize   int          `json:"grid_size"`   // Subdivision level of the geodesic grid (0..10)
	Axis       vectors.Vec3 `json:"axis"`        // Rotation axis of the planet
	Seed       string       `json:"seed"`        // Seed of the elevation noise (any string, "" is fine)
	Iterations int          `json:"iterations"`  // Number of elevation bumps
	WaterRatio float64      `json:"water_ratio"` // Target fraction of tiles covered by water
}

// NewTerrainConfig returns a new config for terrain generation.
func NewTerrainConfig() *TerrainConfig {
	return &TerrainConfig{
		GridSize:   6,
		Axis:       vectors.Vec3{X: 0, Y: 1, Z: 0},
		Seed:       "",
		Iterations: 1000,
		WaterRatio: 0.65,
	}
}

// Correct clamps all values into their legal ranges. It never fails.
func (c *TerrainConfig) Correct() {
	if c.GridSize < 0 {
		c.GridSize = 0
	} else if c.GridSize > geodesic.MaxSize {
		c.GridSize = geodesic.MaxSize
	}
	if various.IsZero3(c.Axis) {
		c.Axis = vectors.Vec3{X: 0, Y: 0, Z: 1}
	} else {
		c.Axis = c.Axis.Normalize()
	}
	if c.Iterations < 0 {
		c.Iterations = 0
	}
	c.WaterRatio = various.Clamp(c.WaterRatio, 0, 1)
}

// ClimateConfig holds all configuration options for the climate simulation.
type ClimateConfig struct {
	Seasons        int     `json:"seasons"`         // Number of seasons per year, at least 1
	AxialTilt      float64 `json:"axial_tilt"`      // Axial tilt in radians (0..π/2)
	ErrorTolerance float64 `json:"error_tolerance"` // Convergence tolerance of the humidity solver
}

// NewClimateConfig returns a new config for the climate simulation.
func NewClimateConfig() *ClimateConfig {
	return &ClimateConfig{
		Seasons:        1,
		AxialTilt:      0.4,
		ErrorTolerance: 0.01,
	}
}

// Correct clamps all values into their legal ranges. It never fails.
func (c *ClimateConfig) Correct() {
	if c.Seasons < 1 {
		c.Seasons = 1
	}
	c.AxialTilt = various.Clamp(c.AxialTilt, 0, math.Pi/2)
	c.ErrorTolerance = various.Clamp(c.ErrorTolerance, 0.001, 1)
}
