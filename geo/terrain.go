package geo

import (
	"log"
	"time"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/geodesic"
)

// Type classifies a tile, corner or edge of the terrain.
type Type uint8

const (
	TypeLand Type = 1 << iota
	TypeWater
	TypeCoast
)

// Has returns true if all bits of f are set in t.
func (t Type) Has(f Type) bool {
	return t&f == f
}

func (t Type) String() string {
	switch t {
	case TypeLand:
		return "land"
	case TypeWater:
		return "water"
	case TypeCoast:
		return "coast"
	case TypeLand | TypeCoast:
		return "land|coast"
	case TypeWater | TypeCoast:
		return "water|coast"
	}
	return "none"
}

// Water describes the water column above a tile.
type Water struct {
	Surface float64 // Elevation of the water surface
	Depth   float64 // Surface minus ground elevation, > 0 for water tiles
}

// TerrainTile holds the terrain properties of a tile.
// Type is either TypeLand or TypeWater, optionally with TypeCoast.
type TerrainTile struct {
	Elevation float64
	Water     Water
	Type      Type
}

// IsLand returns true if the tile is dry.
func (t *TerrainTile) IsLand() bool { return t.Type.Has(TypeLand) }

// IsWater returns true if the tile is covered by the sea.
func (t *TerrainTile) IsWater() bool { return t.Type.Has(TypeWater) }

// HasCoast returns true if the tile has both land and water neighbours.
func (t *TerrainTile) HasCoast() bool { return t.Type.Has(TypeCoast) }

// TerrainCorner holds the terrain properties of a corner.
// Type is exactly one of TypeLand, TypeWater and TypeCoast.
type TerrainCorner struct {
	Elevation      float64
	RiverDirection int // Slot of the downstream neighbour corner, -1 if none
	DistanceToSea  int // Steps along the river tree, -1 if unreached
	Type           Type
}

// IsLand returns true if all tiles around the corner are land.
func (c *TerrainCorner) IsLand() bool { return c.Type == TypeLand }

// IsWater returns true if all tiles around the corner are water.
func (c *TerrainCorner) IsWater() bool { return c.Type == TypeWater }

// IsCoast returns true if the corner touches both land and water.
func (c *TerrainCorner) IsCoast() bool { return c.Type == TypeCoast }

// TerrainEdge holds the terrain properties of an edge.
type TerrainEdge struct {
	Type Type
}

// Vars are the planet wide terrain variables.
type Vars struct {
	GridSize int
	Axis     vectors.Vec3
	Radius   float64 // Meters
	SeaLevel float64
}

// DefaultRadius is the planet radius in meters used for areas and lengths.
const DefaultRadius = 40000000.0

// Terrain holds the terrain of a planet, indexed like the grid it was
// generated for.
type Terrain struct {
	Vars
	Tiles   []TerrainTile
	Corners []TerrainCorner
	Edges   []TerrainEdge
}

// NewTerrain returns a flat, dry terrain for the given grid.
func NewTerrain(g *geodesic.Grid) *Terrain {
	t := &Terrain{
		Vars: Vars{
			GridSize: g.Size,
			Axis:     vectors.Vec3{X: 0, Y: 1, Z: 0},
			Radius:   DefaultRadius,
		},
		Tiles:   make([]TerrainTile, len(g.Tiles)),
		Corners: make([]TerrainCorner, len(g.Corners)),
		Edges:   make([]TerrainEdge, len(g.Edges)),
	}
	for i := range t.Tiles {
		t.Tiles[i].Type = TypeLand
	}
	for i := range t.Corners {
		t.Corners[i] = TerrainCorner{
			RiverDirection: -1,
			DistanceToSea:  -1,
			Type:           TypeLand,
		}
	}
	for i := range t.Edges {
		t.Edges[i].Type = TypeLand
	}
	return t
}

// GenerateTerrain generates the terrain for grid g. cfg is corrected in
// place before use. g must match cfg.GridSize.
func GenerateTerrain(g *geodesic.Grid, cfg *TerrainConfig) *Terrain {
	cfg.Correct()
	t := NewTerrain(g)
	t.Axis = cfg.Axis

	// Elevation.
	start := time.Now()
	t.setElevation(g, cfg.Seed, cfg.Iterations)
	t.scaleElevation()
	log.Println("Done elevation in ", time.Since(start).String())

	// Sea.
	start = time.Now()
	t.createSea(g, cfg.WaterRatio)
	log.Println("Done sea in ", time.Since(start).String())

	// Land / water / coast.
	start = time.Now()
	t.classify(g)
	log.Println("Done classification in ", time.Since(start).String())

	// Rivers.
	start = time.Now()
	t.setRiverDirections(g)
	log.Println("Done rivers in ", time.Since(start).String())
	return t
}
