package geo

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/geodesic"
	"github.com/dmchurch/earthgen/various"
)

// SecondsPerDay is the rotation period used for the Coriolis coefficient.
const SecondsPerDay = 86400.0

// Latitude returns the latitude of p in radians.
func (v *Vars) Latitude(p vectors.Vec3) float64 {
	return various.LatitudeAround(v.Axis, p)
}

// North returns the angle in radians, counter-clockwise in the tangent
// plane, from the direction of the tile's first neighbour to local north.
func (v *Vars) North(g *geodesic.Grid, tile int) float64 {
	t := &g.Tiles[tile]
	east, north := various.TangentFrame(v.Axis, t.V)
	d := various.ToTangent2(vectors.Sub3(g.Tiles[t.Tiles[0]].V, t.V), east, north)
	return math.Pi/2 - various.Angle2(d)
}

// Area returns the surface area of a tile in square meters.
func (v *Vars) Area(g *geodesic.Grid, tile int) float64 {
	t := &g.Tiles[tile]
	var a float64
	for k := range t.Corners {
		a += various.TriArea3(t.V, g.Corners[t.NthCorner(k)].V, g.Corners[t.NthCorner(k+1)].V)
	}
	return a * v.Radius * v.Radius
}

// Length returns the length of an edge in meters.
func (v *Vars) Length(g *geodesic.Grid, edge int) float64 {
	e := &g.Edges[edge]
	return various.Dist3(g.Corners[e.Corners[0]].V, g.Corners[e.Corners[1]].V) * v.Radius
}

// CoriolisCoefficient returns the Coriolis parameter at the given latitude.
func CoriolisCoefficient(lat float64) float64 {
	return 2 * (2 * math.Pi / SecondsPerDay) * math.Sin(lat)
}
