package geo

import (
	"math"
	"testing"

	"github.com/dmchurch/earthgen/geodesic"
)

func TestDistanceField(t *testing.T) {
	g := geodesic.SizeNGrid(2)
	dist := DistanceField(g, []int{0}, nil)
	if dist[0] != 0 {
		t.Fatalf("seed has distance %v", dist[0])
	}
	for _, n := range g.Tiles[0].Tiles {
		if dist[n] != 1 {
			t.Fatalf("neighbour %d has distance %v", n, dist[n])
		}
	}
	for i, d := range dist {
		if math.IsInf(d, 1) {
			t.Fatalf("tile %d unreachable", i)
		}
	}

	// Walling off the seed leaves everything else unreachable.
	wall := map[int]bool{}
	for _, n := range g.Tiles[0].Tiles {
		wall[n] = true
	}
	dist = DistanceField(g, []int{0}, func(i int) bool { return wall[i] })
	if !math.IsInf(dist[50], 1) {
		t.Fatalf("tile 50 reached through the wall: %v", dist[50])
	}
}

func TestFitnessProximityToWater(t *testing.T) {
	g, tr := testTerrain(t, 3, 300, 0.6)
	fit := tr.FitnessProximityToWater(g)
	for i, f := range fit {
		if f < 0 || f > 1 {
			t.Fatalf("tile %d: fitness %v", i, f)
		}
		if tr.Tiles[i].IsWater() && f != 0 {
			t.Fatalf("water tile %d: fitness %v", i, f)
		}
		if tr.Tiles[i].IsLand() && tr.Tiles[i].HasCoast() && f != 1 {
			t.Fatalf("coastal land tile %d: fitness %v", i, f)
		}
	}
}
