package geo

import "github.com/dmchurch/earthgen/geodesic"

// River is a directed river segment from Source to Direction along the
// edge Channel. All fields are -1 if there is no river.
type River struct {
	Source    int // Upstream corner
	Direction int // Downstream corner
	Channel   int // Edge between the two
}

var noRiver = River{Source: -1, Direction: -1, Channel: -1}

// Exists returns true if r describes an actual river segment.
func (r River) Exists() bool {
	return r.Source >= 0
}

// HasRiver returns true if a river flows along the edge.
func (t *Terrain) HasRiver(g *geodesic.Grid, edge int) bool {
	return t.RiverOfEdge(g, edge).Exists()
}

// RiverOfEdge returns the river flowing along the edge.
func (t *Terrain) RiverOfEdge(g *geodesic.Grid, edge int) River {
	e := &g.Edges[edge]
	for i := 0; i < 2; i++ {
		src, dst := e.Corners[i], e.Corners[1-i]
		if d := t.Corners[src].RiverDirection; d >= 0 && g.Corners[src].Corners[d] == dst {
			return River{Source: src, Direction: dst, Channel: edge}
		}
	}
	return noRiver
}

// RiverOfCorner returns the river flowing out of the corner.
func (t *Terrain) RiverOfCorner(g *geodesic.Grid, corner int) River {
	d := t.Corners[corner].RiverDirection
	if d < 0 {
		return noRiver
	}
	c := &g.Corners[corner]
	return River{Source: corner, Direction: c.Corners[d], Channel: c.Edges[d]}
}

// LeftTributary returns the river joining r from the left, seen in the
// direction of flow.
func (t *Terrain) LeftTributary(g *geodesic.Grid, r River) River {
	return t.tributary(g, r, 1)
}

// RightTributary returns the river joining r from the right.
func (t *Terrain) RightTributary(g *geodesic.Grid, r River) River {
	return t.tributary(g, r, -1)
}

func (t *Terrain) tributary(g *geodesic.Grid, r River, offset int) River {
	if !r.Exists() {
		return noRiver
	}
	src := &g.Corners[r.Source]
	up := src.NthCorner(src.CornerPosition(r.Direction) + offset)
	if t.Corners[up].RiverDirection == g.Corners[up].CornerPosition(r.Source) {
		return t.RiverOfCorner(g, up)
	}
	return noRiver
}
