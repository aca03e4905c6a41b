package geodesic

import (
	"github.com/Flokey82/geoquad"
	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/various"
)

// Locator finds the tile closest to a latitude/longitude pair on a grid
// rotating around a given axis.
type Locator struct {
	grid     *Grid
	axis     vectors.Vec3
	quadTree *geoquad.QuadTree
}

// NewLocator indexes the tile centers of g. Latitudes and longitudes are in
// degrees, relative to axis.
func NewLocator(g *Grid, axis vectors.Vec3) *Locator {
	points := make([]geoquad.Point, 0, len(g.Tiles))
	for i := range g.Tiles {
		lat, lon := various.LatLonAround(axis, g.Tiles[i].V)
		points = append(points, geoquad.Point{
			Lat:  lat,
			Lon:  lon,
			Data: i,
		})
	}
	return &Locator{
		grid:     g,
		axis:     axis,
		quadTree: geoquad.NewQuadTree(points),
	}
}

// TileAt returns the id of the tile containing the given position.
func (l *Locator) TileAt(latDeg, lonDeg float64) (int, bool) {
	res, ok := l.quadTree.FindNearestNeighbor(geoquad.Point{Lat: latDeg, Lon: lonDeg})
	if !ok {
		return -1, false
	}
	// The quadtree works on a flat lat/lon plane, so near the poles and the
	// antimeridian its answer can be off by a few tiles. Walk downhill on
	// the true distance to fix that up.
	p := various.FromLatLonAround(l.axis, latDeg, lonDeg)
	return l.descend(res.Data.(int), p), true
}

// descend walks from tile start to the tile nearest to p.
func (l *Locator) descend(start int, p vectors.Vec3) int {
	cur := start
	best := various.DistSq3(l.grid.Tiles[cur].V, p)
	for {
		next := cur
		for _, n := range l.grid.Tiles[cur].Tiles {
			if d := various.DistSq3(l.grid.Tiles[n].V, p); d < best {
				best, next = d, n
			}
		}
		if next == cur {
			return cur
		}
		cur = next
	}
}
