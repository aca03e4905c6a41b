package geodesic

import (
	"testing"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/various"
)

func TestLocatorFindsTileCenters(t *testing.T) {
	g := SizeNGrid(3)
	axis := vectors.Vec3{Y: 1}
	l := NewLocator(g, axis)
	for i := 0; i < len(g.Tiles); i += 7 {
		lat, lon := various.LatLonAround(axis, g.Tiles[i].V)
		got, ok := l.TileAt(lat, lon)
		if !ok {
			t.Fatalf("tile %d: no result", i)
		}
		if got != i {
			t.Errorf("tile %d: located %d", i, got)
		}
	}
}

func TestLocatorReturnsNearest(t *testing.T) {
	g := SizeNGrid(2)
	axis := vectors.Vec3{Y: 1}
	l := NewLocator(g, axis)
	for _, ll := range [][2]float64{{0, 0}, {45, 179}, {-89, 10}, {12.5, -60}} {
		got, ok := l.TileAt(ll[0], ll[1])
		if !ok {
			t.Fatalf("%v: no result", ll)
		}
		p := various.FromLatLonAround(axis, ll[0], ll[1])
		best := 0
		for i := range g.Tiles {
			if various.DistSq3(g.Tiles[i].V, p) < various.DistSq3(g.Tiles[best].V, p) {
				best = i
			}
		}
		if various.DistSq3(g.Tiles[got].V, p) > various.DistSq3(g.Tiles[best].V, p)+1e-12 {
			t.Errorf("%v: located %d, nearest is %d", ll, got, best)
		}
	}
}
