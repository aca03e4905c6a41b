package geo

import (
	"container/heap"

	"github.com/dmchurch/earthgen/geodesic"
)

// setRiverDirections grows a drainage tree over the land corners, rooted at
// all coast corners at once. Corners are expanded in order of elevation, so
// rivers follow the lowest reachable path towards the sea. Every land
// corner that is reached points to its downstream neighbour and knows how
// many steps it is away from the coast.
func (t *Terrain) setRiverDirections(g *geodesic.Grid) {
	var queue AscPriorityQueue
	for i := range t.Corners {
		if t.Corners[i].IsCoast() {
			t.Corners[i].DistanceToSea = 0
			queue = append(queue, &QueueEntry{
				Score:       t.Corners[i].Elevation,
				Origin:      -1,
				Destination: i,
			})
		}
	}
	heap.Init(&queue)

	for queue.Len() > 0 {
		c := heap.Pop(&queue).(*QueueEntry).Destination
		for _, n := range g.Corners[c].Corners {
			nc := &t.Corners[n]
			if !nc.IsLand() || nc.RiverDirection != -1 {
				continue
			}
			nc.RiverDirection = g.Corners[n].CornerPosition(c)
			nc.DistanceToSea = t.Corners[c].DistanceToSea + 1
			heap.Push(&queue, &QueueEntry{
				Score:       nc.Elevation,
				Origin:      c,
				Destination: n,
			})
		}
	}
}
