package earthgen

import (
	"errors"
	"fmt"
	"math"

	"github.com/dmchurch/earthgen/geo"
	"github.com/dmchurch/earthgen/various"
	geojson "github.com/paulmach/go.geojson"
)

// ErrUnknownFeatures is returned for feature collections that do not exist.
var ErrUnknownFeatures = errors.New("unknown feature collection")

// coordDecimals keeps the encoded coordinates at roughly 10m.
const coordDecimals = 4

// FeatureNames returns the names of the GeoJSON feature collections.
func FeatureNames() []string {
	return []string{"rivers", "coast"}
}

// GeoJSON returns the named feature collection encoded as GeoJSON.
func (p *Planet) GeoJSON(name string) ([]byte, error) {
	if p.TerrainIsStale() {
		return nil, fmt.Errorf("features %q: terrain not generated", name)
	}
	var fc *geojson.FeatureCollection
	switch name {
	case "rivers":
		fc = p.riverFeatures()
	case "coast":
		fc = p.coastFeatures()
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFeatures, name)
	}
	return fc.MarshalJSON()
}

// cornerLonLat returns the GeoJSON position of a corner.
func (p *Planet) cornerLonLat(corner int) []float64 {
	lat, lon := various.LatLonAround(p.Terrain.Axis, p.Grid.Corners[corner].V)
	return []float64{various.RoundToDecimals(lon, coordDecimals), various.RoundToDecimals(lat, coordDecimals)}
}

// splitAtAntimeridian cuts a line wherever it jumps across ±180°.
// Pieces with a single position are dropped.
func splitAtAntimeridian(line [][]float64) [][][]float64 {
	var res [][][]float64
	start := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && math.Abs(line[i][0]-line[i-1][0]) <= 180 {
			continue
		}
		if i-start > 1 {
			res = append(res, line[start:i])
		}
		start = i
	}
	return res
}

// riverFeatures traces every river from its head down to the sea or to the
// river it joins. Each river segment is part of exactly one line.
func (p *Planet) riverFeatures() *geojson.FeatureCollection {
	g, t := p.Grid, p.Terrain
	inflow := make([]int, len(g.Corners))
	for i := range g.Corners {
		if r := t.RiverOfCorner(g, i); r.Exists() {
			inflow[r.Direction]++
		}
	}

	fc := geojson.NewFeatureCollection()
	visited := make([]bool, len(g.Corners))
	for head := range g.Corners {
		if inflow[head] > 0 || !t.RiverOfCorner(g, head).Exists() {
			continue
		}
		var line [][]float64
		for c := head; ; {
			line = append(line, p.cornerLonLat(c))
			if visited[c] {
				break
			}
			visited[c] = true
			r := t.RiverOfCorner(g, c)
			if !r.Exists() {
				break
			}
			c = r.Direction
		}
		for _, piece := range splitAtAntimeridian(line) {
			f := geojson.NewLineStringFeature(piece)
			f.SetProperty("source", head)
			fc.AddFeature(f)
		}
	}
	return fc
}

// coastFeatures returns all edges between land and water as one
// multi line string.
func (p *Planet) coastFeatures() *geojson.FeatureCollection {
	g, t := p.Grid, p.Terrain
	var lines [][][]float64
	for i := range g.Edges {
		if !t.Edges[i].Type.Has(geo.TypeCoast) {
			continue
		}
		e := &g.Edges[i]
		lines = append(lines, splitAtAntimeridian([][]float64{
			p.cornerLonLat(e.Corners[0]),
			p.cornerLonLat(e.Corners[1]),
		})...)
	}
	fc := geojson.NewFeatureCollection()
	if len(lines) > 0 {
		f := geojson.NewMultiLineStringFeature(lines...)
		f.SetProperty("edges", len(lines))
		fc.AddFeature(f)
	}
	return fc
}
