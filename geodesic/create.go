package geodesic

import (
	"fmt"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/various"
)

// Icosahedron vertex coordinates.
const (
	icosX = -0.525731112119133606
	icosZ = -0.850650808352039932
)

var icosTiles = [NumPentiles]vectors.Vec3{
	{X: -icosX, Y: 0, Z: icosZ},
	{X: icosX, Y: 0, Z: icosZ},
	{X: -icosX, Y: 0, Z: -icosZ},
	{X: icosX, Y: 0, Z: -icosZ},
	{X: 0, Y: icosZ, Z: icosX},
	{X: 0, Y: icosZ, Z: -icosX},
	{X: 0, Y: -icosZ, Z: icosX},
	{X: 0, Y: -icosZ, Z: -icosX},
	{X: icosZ, Y: icosX, Z: 0},
	{X: -icosZ, Y: icosX, Z: 0},
	{X: icosZ, Y: -icosX, Z: 0},
	{X: -icosZ, Y: -icosX, Z: 0},
}

// icosNeighbors lists the neighbours of each level 0 tile in order.
var icosNeighbors = [NumPentiles][5]int{
	{9, 4, 1, 6, 11}, {4, 8, 10, 6, 0}, {11, 7, 3, 5, 9}, {2, 7, 10, 8, 5},
	{9, 5, 8, 1, 0}, {2, 3, 8, 4, 9}, {0, 1, 10, 7, 11}, {11, 6, 10, 3, 2},
	{5, 3, 10, 1, 4}, {2, 5, 4, 0, 11}, {3, 7, 6, 1, 8}, {7, 2, 9, 0, 6},
}

// icosBeltCorners are the tile triples of the ten level 0 corners that touch
// neither tile 0 nor tile 3.
var icosBeltCorners = [10][3]int{
	{10, 1, 8}, {1, 10, 6}, {6, 10, 7}, {6, 7, 11}, {11, 7, 2},
	{11, 2, 9}, {9, 2, 5}, {9, 5, 4}, {4, 5, 8}, {4, 8, 1},
}

// SizeNGrid builds the grid of the given size from scratch.
// Sizes are clamped to 0..MaxSize.
func SizeNGrid(size int) *Grid {
	size = clampSize(size)
	g := sizeZeroGrid()
	for g.Size < size {
		g = subdivide(g)
	}
	return g
}

func clampSize(size int) int {
	if size < 0 {
		return 0
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

func sizeZeroGrid() *Grid {
	g := newGrid(0)
	for i := range g.Tiles {
		g.Tiles[i].V = icosTiles[i]
		copy(g.Tiles[i].Tiles, icosNeighbors[i][:])
	}
	for i := 0; i < 5; i++ {
		g.addCorner(i, 0, icosNeighbors[0][(i+4)%5], icosNeighbors[0][i])
	}
	for i := 0; i < 5; i++ {
		g.addCorner(i+5, 3, icosNeighbors[3][(i+4)%5], icosNeighbors[3][i])
	}
	for i, ts := range icosBeltCorners {
		g.addCorner(i+10, ts[0], ts[1], ts[2])
	}
	g.connectCorners()
	g.addEdges()
	return g
}

// subdivide derives the grid of level prev.Size+1.
// Old tiles keep their id and position, old corner i becomes tile
// len(prev.Tiles)+i.
func subdivide(prev *Grid) *Grid {
	g := newGrid(prev.Size + 1)
	prevTiles := len(prev.Tiles)

	for i := range prev.Tiles {
		t := &g.Tiles[i]
		t.V = prev.Tiles[i].V
		for k, c := range prev.Tiles[i].Corners {
			t.Tiles[k] = c + prevTiles
		}
	}
	for i := range prev.Corners {
		pc := &prev.Corners[i]
		t := &g.Tiles[i+prevTiles]
		t.V = pc.V
		for k := 0; k < 3; k++ {
			t.Tiles[2*k] = pc.Corners[k] + prevTiles
			t.Tiles[2*k+1] = pc.Tiles[k]
		}
	}

	var next int
	for i := 0; i < prevTiles; i++ {
		t := &g.Tiles[i]
		n := t.EdgeCount()
		for k := 0; k < n; k++ {
			g.addCorner(next, i, t.Tiles[(k+n-1)%n], t.Tiles[k])
			next++
		}
	}
	g.connectCorners()
	g.addEdges()
	return g
}

// addCorner creates corner id between the three tiles, which must be
// mutual neighbours.
func (g *Grid) addCorner(id, t1, t2, t3 int) {
	ts := [3]int{t1, t2, t3}
	c := &g.Corners[id]
	var sum vectors.Vec3
	for _, t := range ts {
		sum = various.Add3(sum, g.Tiles[t].V)
	}
	c.V = sum.Normalize()
	for i := 0; i < 3; i++ {
		t := &g.Tiles[ts[i]]
		pos := t.TilePosition(ts[(i+2)%3])
		if pos < 0 {
			panic(fmt.Sprintf("geodesic: tiles %d and %d are not adjacent", ts[i], ts[(i+2)%3]))
		}
		t.Corners[pos] = id
		c.Tiles[i] = ts[i]
	}
}

// connectCorners links each corner to its three neighbouring corners.
func (g *Grid) connectCorners() {
	for ci := range g.Corners {
		c := &g.Corners[ci]
		for k := 0; k < 3; k++ {
			t := &g.Tiles[c.Tiles[k]]
			pos := t.CornerPosition(ci)
			if pos < 0 {
				panic(fmt.Sprintf("geodesic: corner %d missing from tile %d", ci, t.ID))
			}
			c.Corners[k] = t.Corners[(pos+1)%t.EdgeCount()]
		}
	}
}

// addEdges creates one edge for every unset tile slot, in tile order.
func (g *Grid) addEdges() {
	var next int
	for ti := range g.Tiles {
		t := &g.Tiles[ti]
		for k := 0; k < t.EdgeCount(); k++ {
			if t.Edges[k] == unset {
				g.addEdge(next, ti, t.Tiles[k])
				next++
			}
		}
	}
}

func (g *Grid) addEdge(id, t1, t2 int) {
	ts := [2]int{t1, t2}
	first := &g.Tiles[t1]
	p := first.TilePosition(t2)
	if p < 0 {
		panic(fmt.Sprintf("geodesic: tiles %d and %d are not adjacent", t1, t2))
	}
	cs := [2]int{first.Corners[p], first.Corners[(p+1)%first.EdgeCount()]}

	e := &g.Edges[id]
	for i := 0; i < 2; i++ {
		t := &g.Tiles[ts[i]]
		t.Edges[t.TilePosition(ts[(i+1)%2])] = id
		e.Tiles[i] = ts[i]

		c := &g.Corners[cs[i]]
		pos := c.CornerPosition(cs[(i+1)%2])
		if pos < 0 {
			panic(fmt.Sprintf("geodesic: corners %d and %d are not adjacent", cs[i], cs[(i+1)%2]))
		}
		c.Edges[pos] = id
		e.Corners[i] = cs[i]
	}
}

// Check verifies the structural invariants of the grid and returns the
// first violation found.
func (g *Grid) Check() error {
	if len(g.Tiles) != TileCount(g.Size) || len(g.Corners) != CornerCount(g.Size) || len(g.Edges) != EdgeCount(g.Size) {
		return fmt.Errorf("grid %d: unexpected element counts %d/%d/%d", g.Size, len(g.Tiles), len(g.Corners), len(g.Edges))
	}
	for i := range g.Tiles {
		t := &g.Tiles[i]
		want := 6
		if i < NumPentiles {
			want = 5
		}
		if t.EdgeCount() != want || len(t.Tiles) != want || len(t.Corners) != want {
			return fmt.Errorf("tile %d: degree %d, want %d", i, t.EdgeCount(), want)
		}
		for k := 0; k < want; k++ {
			n := t.Tiles[k]
			if n < 0 || t.Corners[k] < 0 || t.Edges[k] < 0 {
				return fmt.Errorf("tile %d: unset slot %d", i, k)
			}
			if g.Tiles[n].TilePosition(i) < 0 {
				return fmt.Errorf("tile %d: neighbour %d does not list it", i, n)
			}
			e := &g.Edges[t.Edges[k]]
			if e.Sign(i) == 0 || e.OtherTile(i) != n {
				return fmt.Errorf("tile %d: edge %d does not separate it from %d", i, e.ID, n)
			}
			if e.CornerSign(t.Corners[k]) == 0 || e.CornerSign(t.NthCorner(k+1)) == 0 {
				return fmt.Errorf("tile %d: edge %d does not join corners %d and %d", i, e.ID, t.Corners[k], t.NthCorner(k+1))
			}
		}
	}
	for i := range g.Corners {
		c := &g.Corners[i]
		for k := 0; k < 3; k++ {
			if c.Tiles[k] < 0 || c.Corners[k] < 0 || c.Edges[k] < 0 {
				return fmt.Errorf("corner %d: unset slot %d", i, k)
			}
			if g.Corners[c.Corners[k]].CornerPosition(i) < 0 {
				return fmt.Errorf("corner %d: neighbour %d does not list it", i, c.Corners[k])
			}
			if g.Tiles[c.Tiles[k]].CornerPosition(i) < 0 {
				return fmt.Errorf("corner %d: tile %d does not list it", i, c.Tiles[k])
			}
		}
	}
	for i := range g.Edges {
		e := &g.Edges[i]
		for k := 0; k < 2; k++ {
			if g.Tiles[e.Tiles[k]].EdgePosition(i) < 0 {
				return fmt.Errorf("edge %d: tile %d does not list it", i, e.Tiles[k])
			}
			if g.Corners[e.Corners[k]].EdgePosition(i) < 0 {
				return fmt.Errorf("edge %d: corner %d does not list it", i, e.Corners[k])
			}
		}
	}
	return nil
}
