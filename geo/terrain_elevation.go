package geo

import (
	"math"

	"github.com/dmchurch/earthgen/geodesic"
	"github.com/dmchurch/earthgen/noise"
	"github.com/dmchurch/earthgen/various"
	"gonum.org/v1/gonum/floats"
)

// MaxElevation is the elevation of the highest point after scaling.
const MaxElevation = 3000.0

// setElevation samples the bump noise at every tile and corner.
func (t *Terrain) setElevation(g *geodesic.Grid, seed string, iterations int) {
	bumps := noise.NewBumps(seed, iterations)
	various.KickOffChunkWorkers(len(g.Tiles), func(start, end int) {
		for i := start; i < end; i++ {
			t.Tiles[i].Elevation = bumps.Eval3(g.Tiles[i].V)
		}
	})
	various.KickOffChunkWorkers(len(g.Corners), func(start, end int) {
		for i := start; i < end; i++ {
			t.Corners[i].Elevation = bumps.Eval3(g.Corners[i].V)
		}
	})
}

// scaleElevation maps the elevation of all tiles and corners linearly onto
// [0, MaxElevation]. A completely flat terrain stays at 0.
func (t *Terrain) scaleElevation() {
	tileElev := make([]float64, len(t.Tiles))
	for i := range t.Tiles {
		tileElev[i] = t.Tiles[i].Elevation
	}
	cornerElev := make([]float64, len(t.Corners))
	for i := range t.Corners {
		cornerElev[i] = t.Corners[i].Elevation
	}

	lowest, highest := minMax(tileElev)
	if len(cornerElev) > 0 {
		cMin, cMax := minMax(cornerElev)
		lowest = math.Min(lowest, cMin)
		highest = math.Max(highest, cMax)
	}
	scale := MaxElevation / math.Max(1, highest-lowest)

	for _, s := range [][]float64{tileElev, cornerElev} {
		floats.AddConst(-lowest, s)
		floats.Scale(scale, s)
	}
	for i := range t.Tiles {
		t.Tiles[i].Elevation = tileElev[i]
	}
	for i := range t.Corners {
		t.Corners[i].Elevation = cornerElev[i]
	}
}
