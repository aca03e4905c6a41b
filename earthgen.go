// Package earthgen generates planets on a geodesic grid: terrain with
// elevation, sea and rivers, and a seasonal climate with temperature, wind,
// humidity and precipitation.
package earthgen

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/dmchurch/earthgen/geo"
	"github.com/dmchurch/earthgen/geodesic"
)

// grids is shared by all planets, grids are read-only once built.
var grids = geodesic.NewCache()

// ProgressFunc is called after every completed generation step.
type ProgressFunc func(step string, took time.Duration)

// Planet owns a grid, the terrain generated on it and the seasons computed
// for that terrain.
type Planet struct {
	Grid    *geodesic.Grid
	Terrain *geo.Terrain
	Seasons []*geo.Season

	OnProgress ProgressFunc // Optional

	mu      sync.Mutex // Guards locator
	locator *geodesic.Locator
}

// NewPlanet returns a planet with a size 0 grid and no terrain.
func NewPlanet() *Planet {
	p := &Planet{}
	p.SetGridSize(0)
	return p
}

// SetGridSize replaces the grid and drops terrain and seasons.
func (p *Planet) SetGridSize(size int) {
	p.Grid = grids.Get(size)
	p.Clear()
}

// Clear drops terrain and seasons but keeps the grid.
func (p *Planet) Clear() {
	p.Terrain = &geo.Terrain{}
	p.Seasons = nil
	p.resetLocator()
}

// TerrainIsStale returns true if the terrain does not cover the grid.
func (p *Planet) TerrainIsStale() bool {
	return p.Terrain == nil || len(p.Terrain.Tiles) < len(p.Grid.Tiles)
}

// GenerateTerrain builds the grid for cfg.GridSize and replaces the terrain.
// Seasons are dropped.
func (p *Planet) GenerateTerrain(cfg *geo.TerrainConfig) {
	cfg.Correct()
	start := time.Now()
	p.Grid = grids.Get(cfg.GridSize)
	p.progress("grid", start)

	start = time.Now()
	p.Terrain = geo.GenerateTerrain(p.Grid, cfg)
	p.Seasons = nil
	p.resetLocator()
	p.progress("terrain", start)
}

// GenerateClimate computes all seasons, generating the terrain first if it
// is stale.
func (p *Planet) GenerateClimate(cfg *Config) {
	if p.TerrainIsStale() {
		p.GenerateTerrain(cfg.TerrainConfig)
	}
	start := time.Now()
	p.Seasons = geo.GenerateClimate(p.Grid, p.Terrain, cfg.ClimateConfig)
	p.progress("climate", start)
}

// Generate runs the whole pipeline. If ctx is cancelled between two steps
// Generate returns the context error and the planet keeps its previous
// state.
func (p *Planet) Generate(ctx context.Context, cfg *Config) error {
	cfg.Correct()
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	g := grids.Get(cfg.GridSize)
	p.progress("grid", start)

	if err := ctx.Err(); err != nil {
		return err
	}
	start = time.Now()
	t := geo.GenerateTerrain(g, cfg.TerrainConfig)
	p.progress("terrain", start)

	start = time.Now()
	seasons, err := geo.GenerateClimateContext(ctx, g, t, cfg.ClimateConfig)
	if err != nil {
		return err
	}
	p.progress("climate", start)

	p.Grid, p.Terrain, p.Seasons = g, t, seasons
	p.resetLocator()
	return nil
}

func (p *Planet) progress(step string, start time.Time) {
	took := time.Since(start)
	log.Println("Done", step, "in ", took.String())
	if p.OnProgress != nil {
		p.OnProgress(step, took)
	}
}

// TileAt returns the tile at the given latitude and longitude in degrees.
func (p *Planet) TileAt(latDeg, lonDeg float64) (int, bool) {
	p.mu.Lock()
	if p.locator == nil {
		axis := p.Terrain.Axis
		if p.TerrainIsStale() {
			axis = geo.NewTerrainConfig().Axis
		}
		p.locator = geodesic.NewLocator(p.Grid, axis)
	}
	l := p.locator
	p.mu.Unlock()
	return l.TileAt(latDeg, lonDeg)
}

func (p *Planet) resetLocator() {
	p.mu.Lock()
	p.locator = nil
	p.mu.Unlock()
}
