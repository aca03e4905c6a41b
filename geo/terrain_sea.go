package geo

import (
	"container/heap"

	"github.com/dmchurch/earthgen/geodesic"
)

// createSea floods the planet starting at the lowest tile until at least
// waterRatio of all tiles are under water. Basins are always filled
// completely: once the sea level reaches a tile's elevation, every
// connected tile at or below that level is flooded too.
func (t *Terrain) createSea(g *geodesic.Grid, waterRatio float64) {
	start := 0
	for i := range t.Tiles {
		if t.Tiles[i].Elevation < t.Tiles[start].Elevation {
			start = i
		}
	}
	seaLevel := t.Tiles[start].Elevation
	target := int(waterRatio * float64(len(t.Tiles)))

	var water []int
	queued := make([]bool, len(t.Tiles))
	var frontier AscPriorityQueue

	flood := func(ti int) {
		water = append(water, ti)
		for _, n := range g.Tiles[ti].Tiles {
			if !queued[n] {
				queued[n] = true
				heap.Push(&frontier, &QueueEntry{
					Score:       t.Tiles[n].Elevation,
					Origin:      ti,
					Destination: n,
				})
			}
		}
	}
	floodNext := func() int {
		ti := heap.Pop(&frontier).(*QueueEntry).Destination
		flood(ti)
		return ti
	}

	if target > 0 {
		queued[start] = true
		flood(start)
		for len(water) < target && frontier.Len() > 0 {
			seaLevel = t.Tiles[floodNext()].Elevation
			for frontier.Len() > 0 && frontier.Peek().Score <= seaLevel {
				floodNext()
			}
		}
		if frontier.Len() > 0 {
			// Put the shore halfway between the last flooded tile and the
			// next one.
			seaLevel = (seaLevel + frontier.Peek().Score) / 2
		} else {
			// The whole planet is flooded, keep the highest tiles wet too.
			seaLevel++
		}
	}

	t.SeaLevel = seaLevel
	for _, ti := range water {
		t.Tiles[ti].Water = Water{
			Surface: seaLevel,
			Depth:   seaLevel - t.Tiles[ti].Elevation,
		}
	}
}
