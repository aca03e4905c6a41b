// Package geodesic builds the hexagonal/pentagonal geodesic grid used as the
// planet surface. Level 0 is the dual of an icosahedron (12 pentagonal
// tiles); every further level is derived from the previous one by a
// deterministic subdivision.
//
// Tiles, corners and edges live in flat slices on the Grid and refer to each
// other by index only.
package geodesic

import (
	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/various"
)

// MaxSize is the largest supported subdivision level.
const MaxSize = 10

// NumPentiles is the number of five-sided tiles on every level. They always
// carry the ids 0..NumPentiles-1.
const NumPentiles = 12

// unset marks an adjacency slot that has not been assigned yet.
const unset = -1

// TileCount returns the number of tiles of a grid of the given size.
func TileCount(size int) int { return 10*pow3(size) + 2 }

// CornerCount returns the number of corners of a grid of the given size.
func CornerCount(size int) int { return 20 * pow3(size) }

// EdgeCount returns the number of edges of a grid of the given size.
func EdgeCount(size int) int { return 30 * pow3(size) }

func pow3(n int) int {
	r := 1
	for i := 0; i < n; i++ {
		r *= 3
	}
	return r
}

// Tile is a cell of the grid.
// Tiles[k] is the neighbour across Edges[k]; Corners[k] lies between
// Tiles[k-1] and Tiles[k], so Edges[k] runs from Corners[k] to Corners[k+1].
type Tile struct {
	ID      int
	V       vectors.Vec3 // Unit position
	Tiles   []int
	Corners []int
	Edges   []int
}

// EdgeCount returns the number of sides of the tile (5 or 6).
func (t *Tile) EdgeCount() int {
	return len(t.Edges)
}

// TilePosition returns the slot of the neighbour tile n, or -1.
func (t *Tile) TilePosition(n int) int {
	return indexOf(t.Tiles, n)
}

// CornerPosition returns the slot of corner c, or -1.
func (t *Tile) CornerPosition(c int) int {
	return indexOf(t.Corners, c)
}

// EdgePosition returns the slot of edge e, or -1.
func (t *Tile) EdgePosition(e int) int {
	return indexOf(t.Edges, e)
}

// NthTile returns the neighbour in slot n, wrapping around in both
// directions.
func (t *Tile) NthTile(n int) int {
	return t.Tiles[various.Wrap(n, len(t.Tiles))]
}

// NthCorner returns the corner in slot n, wrapping around.
func (t *Tile) NthCorner(n int) int {
	return t.Corners[various.Wrap(n, len(t.Corners))]
}

// NthEdge returns the edge in slot n, wrapping around.
func (t *Tile) NthEdge(n int) int {
	return t.Edges[various.Wrap(n, len(t.Edges))]
}

// Corner is a vertex shared by exactly three tiles.
// Corners[k] is the neighbouring corner reached through Edges[k].
type Corner struct {
	ID      int
	V       vectors.Vec3
	Tiles   [3]int
	Corners [3]int
	Edges   [3]int
}

// TilePosition returns the slot of tile t, or -1.
func (c *Corner) TilePosition(t int) int {
	return indexOf(c.Tiles[:], t)
}

// CornerPosition returns the slot of the neighbouring corner n, or -1.
func (c *Corner) CornerPosition(n int) int {
	return indexOf(c.Corners[:], n)
}

// EdgePosition returns the slot of edge e, or -1.
func (c *Corner) EdgePosition(e int) int {
	return indexOf(c.Edges[:], e)
}

// NthTile returns the tile in slot n, wrapping around.
func (c *Corner) NthTile(n int) int {
	return c.Tiles[various.Wrap(n, 3)]
}

// NthCorner returns the neighbouring corner in slot n, wrapping around.
func (c *Corner) NthCorner(n int) int {
	return c.Corners[various.Wrap(n, 3)]
}

// NthEdge returns the edge in slot n, wrapping around.
func (c *Corner) NthEdge(n int) int {
	return c.Edges[various.Wrap(n, 3)]
}

// Edge separates two tiles and connects two corners.
type Edge struct {
	ID      int
	Tiles   [2]int
	Corners [2]int
}

// Sign returns +1 if tile t is the first tile of the edge, -1 if it is the
// second and 0 if the edge does not border t.
func (e *Edge) Sign(t int) int {
	return sign2(e.Tiles, t)
}

// CornerSign is Sign for the corners of the edge.
func (e *Edge) CornerSign(c int) int {
	return sign2(e.Corners, c)
}

// OtherTile returns the tile across the edge from t.
func (e *Edge) OtherTile(t int) int {
	if e.Tiles[0] == t {
		return e.Tiles[1]
	}
	return e.Tiles[0]
}

func sign2(s [2]int, v int) int {
	switch v {
	case s[0]:
		return 1
	case s[1]:
		return -1
	}
	return 0
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// Grid is a complete geodesic grid of a given subdivision level.
type Grid struct {
	Size    int
	Tiles   []Tile
	Corners []Corner
	Edges   []Edge
}

// newGrid allocates a grid of the given size with all adjacency slots unset.
func newGrid(size int) *Grid {
	g := &Grid{
		Size:    size,
		Tiles:   make([]Tile, TileCount(size)),
		Corners: make([]Corner, CornerCount(size)),
		Edges:   make([]Edge, EdgeCount(size)),
	}
	for i := range g.Tiles {
		deg := 6
		if i < NumPentiles {
			deg = 5
		}
		g.Tiles[i] = Tile{
			ID:      i,
			Tiles:   filled(deg),
			Corners: filled(deg),
			Edges:   filled(deg),
		}
	}
	for i := range g.Corners {
		g.Corners[i] = Corner{
			ID:      i,
			Tiles:   [3]int{unset, unset, unset},
			Corners: [3]int{unset, unset, unset},
			Edges:   [3]int{unset, unset, unset},
		}
	}
	for i := range g.Edges {
		g.Edges[i] = Edge{
			ID:      i,
			Tiles:   [2]int{unset, unset},
			Corners: [2]int{unset, unset},
		}
	}
	return g
}

func filled(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = unset
	}
	return s
}

// Pentiles returns the ids of the five-sided tiles.
func (g *Grid) Pentiles() []int {
	res := make([]int, 0, NumPentiles)
	for i := 0; i < NumPentiles && i < len(g.Tiles); i++ {
		res = append(res, i)
	}
	return res
}

// Hextiles returns the ids of all six-sided tiles.
func (g *Grid) Hextiles() []int {
	if len(g.Tiles) <= NumPentiles {
		return nil
	}
	res := make([]int, 0, len(g.Tiles)-NumPentiles)
	for i := NumPentiles; i < len(g.Tiles); i++ {
		res = append(res, i)
	}
	return res
}
