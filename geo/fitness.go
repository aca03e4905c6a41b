package geo

import (
	"math"

	"github.com/dmchurch/earthgen/geodesic"
)

// DistanceField returns for every tile the number of steps to the nearest
// seed tile, using a breadth first search. Tiles in stop are never entered.
// Unreachable tiles get +Inf.
func DistanceField(g *geodesic.Grid, seeds []int, stop func(int) bool) []float64 {
	dist := make([]float64, len(g.Tiles))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	queue := make([]int, 0, len(g.Tiles))
	for _, s := range seeds {
		if dist[s] != 0 {
			dist[s] = 0
			queue = append(queue, s)
		}
	}
	for q := 0; q < len(queue); q++ {
		cur := queue[q]
		for _, n := range g.Tiles[cur].Tiles {
			if !math.IsInf(dist[n], 1) || (stop != nil && stop(n)) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// FitnessProximityToWater returns a score per tile that is 1 next to the
// sea and falls off towards 0 for the land tile farthest from it. Water tiles
// and planets without any sea score 0.
func (t *Terrain) FitnessProximityToWater(g *geodesic.Grid) []float64 {
	var seeds []int
	for i := range t.Tiles {
		if t.Tiles[i].IsWater() {
			seeds = append(seeds, i)
		}
	}
	dist := DistanceField(g, seeds, nil)

	var maxDist float64
	for _, d := range dist {
		if !math.IsInf(d, 1) {
			maxDist = math.Max(maxDist, d)
		}
	}
	res := make([]float64, len(dist))
	for i, d := range dist {
		if d == 0 || math.IsInf(d, 1) {
			continue
		}
		res[i] = 1 - (d-1)/maxDist
	}
	return res
}
