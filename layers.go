package earthgen

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/dmchurch/earthgen/geo"
)

// ErrUnknownLayer is returned for layer names that do not exist.
var ErrUnknownLayer = errors.New("unknown layer")

// ErrNoClimate is returned for climate layers of a planet without seasons.
var ErrNoClimate = errors.New("no climate generated")

type layerFunc func(p *Planet, s *geo.Season, tile int) float64

var layers = map[string]layerFunc{
	"elevation": func(p *Planet, _ *geo.Season, i int) float64 {
		return p.Terrain.Tiles[i].Elevation
	},
	"water_depth": func(p *Planet, _ *geo.Season, i int) float64 {
		if !p.Terrain.Tiles[i].IsWater() {
			return 0
		}
		return p.Terrain.Tiles[i].Water.Depth
	},
	"latitude": func(p *Planet, _ *geo.Season, i int) float64 {
		return p.Terrain.Latitude(p.Grid.Tiles[i].V)
	},
	"temperature": func(_ *Planet, s *geo.Season, i int) float64 {
		return s.Tiles[i].Temperature
	},
	"humidity": func(_ *Planet, s *geo.Season, i int) float64 {
		return s.Tiles[i].Humidity
	},
	"precipitation": func(_ *Planet, s *geo.Season, i int) float64 {
		return s.Tiles[i].Precipitation
	},
	"wind_speed": func(_ *Planet, s *geo.Season, i int) float64 {
		return s.Tiles[i].Wind.Speed
	},
	"aridity": func(_ *Planet, s *geo.Season, i int) float64 {
		return s.Aridity(i)
	},
	"daylight": func(p *Planet, s *geo.Season, i int) float64 {
		return s.DaylightHours(p.Terrain.Latitude(p.Grid.Tiles[i].V))
	},
	"insolation": func(p *Planet, s *geo.Season, i int) float64 {
		return s.Insolation(p.Terrain.Latitude(p.Grid.Tiles[i].V))
	},
}

// terrainLayers do not need a season.
var terrainLayers = map[string]bool{
	"elevation":   true,
	"water_depth": true,
	"latitude":    true,
}

// wholeLayers are computed for all tiles at once.
var wholeLayers = map[string]func(p *Planet) []float64{
	"water_proximity": func(p *Planet) []float64 {
		return p.Terrain.FitnessProximityToWater(p.Grid)
	},
}

// LayerNames returns the names of all per tile layers.
func LayerNames() []string {
	return []string{"elevation", "water_depth", "water_proximity", "latitude", "temperature", "humidity", "precipitation", "wind_speed", "aridity", "daylight", "insolation"}
}

// SuggestLayer returns the layer name closest to name.
func SuggestLayer(name string) string {
	var best string
	bestDist := -1
	for _, l := range LayerNames() {
		if d := levenshtein.ComputeDistance(name, l); bestDist < 0 || d < bestDist {
			best, bestDist = l, d
		}
	}
	return best
}

// Layer returns one value per tile for the named layer. Climate layers are
// taken from the given season (clamped to the available seasons).
func (p *Planet) Layer(name string, season int) ([]float64, error) {
	fn, ok := layers[name]
	whole, isWhole := wholeLayers[name]
	if !ok && !isWhole {
		return nil, fmt.Errorf("%w %q, did you mean %q?", ErrUnknownLayer, name, SuggestLayer(name))
	}
	if p.TerrainIsStale() {
		return nil, fmt.Errorf("layer %q: terrain not generated", name)
	}
	if isWhole {
		return whole(p), nil
	}
	var s *geo.Season
	if !terrainLayers[name] {
		if len(p.Seasons) == 0 {
			return nil, fmt.Errorf("layer %q: %w", name, ErrNoClimate)
		}
		if season < 0 {
			season = 0
		} else if season >= len(p.Seasons) {
			season = len(p.Seasons) - 1
		}
		s = p.Seasons[season]
	}
	res := make([]float64, len(p.Grid.Tiles))
	for i := range res {
		res[i] = fn(p, s, i)
	}
	return res, nil
}
