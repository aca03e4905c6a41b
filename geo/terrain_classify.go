package geo

import "github.com/dmchurch/earthgen/geodesic"

// classify derives the land / water / coast types from the water depth.
func (t *Terrain) classify(g *geodesic.Grid) {
	for i := range t.Tiles {
		if t.Tiles[i].Water.Depth > 0 {
			t.Tiles[i].Type = TypeWater
		} else {
			t.Tiles[i].Type = TypeLand
		}
	}
	for i := range t.Tiles {
		if t.mixedTiles(g.Tiles[i].Tiles) {
			t.Tiles[i].Type |= TypeCoast
		}
	}
	for i := range t.Corners {
		t.Corners[i].Type = t.cornerOrEdgeType(g.Corners[i].Tiles[:])
	}
	for i := range t.Edges {
		t.Edges[i].Type = t.cornerOrEdgeType(g.Edges[i].Tiles[:])
	}
}

// mixedTiles returns true if the given tiles contain both land and water.
func (t *Terrain) mixedTiles(tiles []int) bool {
	var land, water bool
	for _, n := range tiles {
		if t.Tiles[n].IsWater() {
			water = true
		} else {
			land = true
		}
	}
	return land && water
}

func (t *Terrain) cornerOrEdgeType(tiles []int) Type {
	if t.mixedTiles(tiles) {
		return TypeCoast
	}
	if t.Tiles[tiles[0]].IsWater() {
		return TypeWater
	}
	return TypeLand
}
