package earthgen

import (
	"github.com/dmchurch/earthgen/geo"
	"gonum.org/v1/gonum/floats"
)

// SeasonSummary holds aggregate values of one season.
type SeasonSummary struct {
	TimeOfYear         float64 `json:"time_of_year"`
	MeanTemperature    float64 `json:"mean_temperature"` // Kelvin
	TotalPrecipitation float64 `json:"total_precipitation"`
}

// Summary holds aggregate values of a planet.
type Summary struct {
	GridSize      int             `json:"grid_size"`
	Tiles         int             `json:"tiles"`
	Corners       int             `json:"corners"`
	Edges         int             `json:"edges"`
	SeaLevel      float64         `json:"sea_level"`
	WaterFraction float64         `json:"water_fraction"`
	CoastTiles    int             `json:"coast_tiles"`
	RiverCorners  int             `json:"river_corners"`
	Seasons       []SeasonSummary `json:"seasons"`
}

// Summary returns aggregate values of the planet.
func (p *Planet) Summary() Summary {
	s := Summary{
		GridSize: p.Grid.Size,
		Tiles:    len(p.Grid.Tiles),
		Corners:  len(p.Grid.Corners),
		Edges:    len(p.Grid.Edges),
	}
	if p.TerrainIsStale() {
		return s
	}
	t := p.Terrain
	s.SeaLevel = t.SeaLevel

	var water int
	for i := range t.Tiles {
		if t.Tiles[i].IsWater() {
			water++
		}
		if t.Tiles[i].HasCoast() {
			s.CoastTiles++
		}
	}
	s.WaterFraction = float64(water) / float64(len(t.Tiles))
	for i := range t.Corners {
		if t.Corners[i].RiverDirection >= 0 {
			s.RiverCorners++
		}
	}

	for _, season := range p.Seasons {
		s.Seasons = append(s.Seasons, summarizeSeason(season))
	}
	return s
}

func summarizeSeason(s *geo.Season) SeasonSummary {
	temp := make([]float64, len(s.Tiles))
	precip := make([]float64, len(s.Tiles))
	for i := range s.Tiles {
		temp[i] = s.Tiles[i].Temperature
		precip[i] = s.Tiles[i].Precipitation
	}
	return SeasonSummary{
		TimeOfYear:         s.TimeOfYear,
		MeanTemperature:    floats.Sum(temp) / float64(len(temp)),
		TotalPrecipitation: floats.Sum(precip),
	}
}
