package geo

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/dmchurch/earthgen/geodesic"
)

// FreezingPoint is 0 °C in Kelvin.
const FreezingPoint = 273.15

// Wind is the prevailing wind of a tile. Direction is a bearing in the
// tile's tangent plane, counter-clockwise from local east (π/2 is north).
type Wind struct {
	Direction float64 // Radians
	Speed     float64
}

// ClimateTile holds the climate of a tile in one season.
type ClimateTile struct {
	Wind          Wind
	Temperature   float64 // Kelvin
	Humidity      float64
	Precipitation float64
}

// ClimateCorner holds the climate of a corner in one season.
type ClimateCorner struct {
	RiverFlowIncrease float64 // Not computed yet, always 0
}

// ClimateEdge holds the climate of an edge in one season.
type ClimateEdge struct {
	WindVelocity float64 // Positive when the air flows into Tiles[0] of the edge
	RiverFlow    float64 // Not computed yet, always 0
}

// SeasonVars are the planet wide variables of a season.
type SeasonVars struct {
	AxialTilt       float64 // Radians
	TimeOfYear      float64 // 0..1
	SolarEquator    float64 // Latitude of the sub-solar point, radians
	TropicalEquator float64 // Latitude of the thermal equator, radians
}

// Season is the finalized climate of a planet at one time of the year.
type Season struct {
	SeasonVars
	Tiles   []ClimateTile
	Corners []ClimateCorner
	Edges   []ClimateEdge
}

// GenerateClimate computes one season per cfg.Seasons for the given terrain.
// cfg is corrected in place before use. The terrain is only read.
func GenerateClimate(g *geodesic.Grid, t *Terrain, cfg *ClimateConfig) []*Season {
	seasons, _ := GenerateClimateContext(context.Background(), g, t, cfg)
	return seasons
}

// GenerateClimateContext is GenerateClimate, checking ctx before each season.
// On cancellation it returns nil and the context error.
func GenerateClimateContext(ctx context.Context, g *geodesic.Grid, t *Terrain, cfg *ClimateConfig) ([]*Season, error) {
	cfg.Correct()
	seasons := make([]*Season, 0, cfg.Seasons)
	for i := 0; i < cfg.Seasons; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		seasons = append(seasons, GenerateSeason(g, t, cfg, float64(i)/float64(cfg.Seasons)))
		log.Println("Done season", i, "in ", time.Since(start).String())
	}
	return seasons, nil
}

// GenerateSeason computes the climate at the given time of year (0..1).
func GenerateSeason(g *geodesic.Grid, t *Terrain, cfg *ClimateConfig, timeOfYear float64) *Season {
	s := newSeasonBuilder(g, t, cfg, timeOfYear)

	start := time.Now()
	s.setTemperature()
	log.Println("Done temperature in ", time.Since(start).String())

	start = time.Now()
	s.setWind()
	log.Println("Done wind in ", time.Since(start).String())

	start = time.Now()
	passes := s.setHumidity(cfg.ErrorTolerance)
	log.Println("Done humidity (", passes, "passes) in ", time.Since(start).String())

	return s.finalize()
}

// seasonBuilder holds a season while it is being computed.
type seasonBuilder struct {
	grid    *geodesic.Grid
	terrain *Terrain
	vars    SeasonVars

	latitude []float64 // per tile
	area     []float64 // per tile
	length   []float64 // per edge

	tiles []ClimateTile
	edges []ClimateEdge
}

func newSeasonBuilder(g *geodesic.Grid, t *Terrain, cfg *ClimateConfig, timeOfYear float64) *seasonBuilder {
	solar := cfg.AxialTilt * math.Sin(2*math.Pi*timeOfYear)
	s := &seasonBuilder{
		grid:    g,
		terrain: t,
		vars: SeasonVars{
			AxialTilt:       cfg.AxialTilt,
			TimeOfYear:      timeOfYear,
			SolarEquator:    solar,
			TropicalEquator: 0.67 * solar,
		},
		latitude: make([]float64, len(g.Tiles)),
		area:     make([]float64, len(g.Tiles)),
		length:   make([]float64, len(g.Edges)),
		tiles:    make([]ClimateTile, len(g.Tiles)),
		edges:    make([]ClimateEdge, len(g.Edges)),
	}
	for i := range g.Tiles {
		s.latitude[i] = t.Latitude(g.Tiles[i].V)
		s.area[i] = t.Area(g, i)
	}
	for i := range g.Edges {
		s.length[i] = t.Length(g, i)
	}
	return s
}

// finalize copies the builder into an immutable season.
func (s *seasonBuilder) finalize() *Season {
	res := &Season{
		SeasonVars: s.vars,
		Tiles:      make([]ClimateTile, len(s.tiles)),
		Corners:    make([]ClimateCorner, len(s.grid.Corners)),
		Edges:      make([]ClimateEdge, len(s.edges)),
	}
	copy(res.Tiles, s.tiles)
	copy(res.Edges, s.edges)
	return res
}

// SaturationHumidity returns the maximum humidity of air at the given
// temperature in Kelvin.
func SaturationHumidity(temperature float64) float64 {
	const c = 4.6e-9
	const k = 0.05174
	return c * math.Exp(k*temperature)
}

// PotentialEvapotranspiration returns how much more water the air of the
// tile could hold.
func (s *Season) PotentialEvapotranspiration(tile int) float64 {
	t := &s.Tiles[tile]
	return SaturationHumidity(t.Temperature) - t.Humidity
}

// Aridity returns the potential evapotranspiration relative to the
// saturation humidity at 10 °C. 0 means saturated air.
func (s *Season) Aridity(tile int) float64 {
	return s.PotentialEvapotranspiration(tile) / SaturationHumidity(10+FreezingPoint)
}
