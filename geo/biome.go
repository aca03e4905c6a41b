package geo

import (
	"github.com/Flokey82/genbiome"
	"gonum.org/v1/gonum/floats"
)

// MaxPrecipitation is the wettest end of the Whittaker diagram.
const MaxPrecipitation = genbiome.MaxPrecipitationDM // 450cm

// NoBiome is the biome of water tiles.
const NoBiome = -1

// Biomes returns the Whittaker biome of every tile in the season. The
// precipitation is normalized to the wettest land tile of the season.
// Water tiles get NoBiome.
func (s *Season) Biomes(t *Terrain) []int {
	precip := make([]float64, len(s.Tiles))
	for i := range s.Tiles {
		if t.Tiles[i].IsLand() {
			precip[i] = s.Tiles[i].Precipitation
		}
	}
	maxPrecip := floats.Max(precip)
	if maxPrecip > 0 {
		floats.Scale(1/maxPrecip, precip)
	}

	res := make([]int, len(s.Tiles))
	for i := range s.Tiles {
		if t.Tiles[i].IsWater() {
			res[i] = NoBiome
			continue
		}
		res[i] = genbiome.GetWhittakerModBiome(int(s.Tiles[i].Temperature-FreezingPoint), int(precip[i]*MaxPrecipitation))
	}
	return res
}

// BiomeName returns the human readable name of a biome.
func BiomeName(biome int) string {
	if biome == NoBiome {
		return "water"
	}
	return genbiome.WhittakerModBiomeToString(biome)
}
