package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/dmchurch/earthgen/geodesic"
)

// DescribeTile returns a short human readable description of a tile.
// biomes may be nil, in which case the biome is left out.
func DescribeTile(g *geodesic.Grid, t *Terrain, s *Season, biomes []int, tile int) string {
	tt := &t.Tiles[tile]
	var sb strings.Builder
	if tt.IsWater() {
		fmt.Fprintf(&sb, "The tile is covered by water %.0f deep", tt.Water.Depth)
	} else {
		fmt.Fprintf(&sb, "The tile lies %.0f above sea level", tt.Elevation-t.SeaLevel)
		if biomes != nil {
			sb.WriteString(" and is covered by " + BiomeName(biomes[tile]))
		}
	}
	sb.WriteString(".")
	if tt.HasCoast() {
		sb.WriteString(" It borders the coast.")
	}

	var rivers int
	for _, e := range g.Tiles[tile].Edges {
		if t.HasRiver(g, e) {
			rivers++
		}
	}
	if rivers > 0 {
		fmt.Fprintf(&sb, " Rivers run along %d of its edges.", rivers)
	}

	if s != nil {
		ct := &s.Tiles[tile]
		fmt.Fprintf(&sb, " The air is %.1f °C", ct.Temperature-FreezingPoint)
		if ct.Wind.Speed > 0 {
			fmt.Fprintf(&sb, " with wind towards %s", compassName(ct.Wind.Direction))
		}
		sb.WriteString(".")
	}
	return sb.String()
}

// compassName returns the eight-point compass name of a tangent plane
// direction (counter-clockwise from east).
func compassName(dir float64) string {
	names := [8]string{"east", "northeast", "north", "northwest", "west", "southwest", "south", "southeast"}
	k := int(math.Floor(dir/(2*math.Pi)*8+8.5)) % 8
	return names[k]
}
