package geo

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/various"
)

// SurfaceFriction is the friction coefficient of the lower atmosphere.
const SurfaceFriction = 4.5e-5

// pressureDeviation is the amplitude of the default pressure profile.
const pressureDeviation = 20.0 / 15000

// DefaultPressureGradient returns the northward pressure gradient force at
// the given latitude for a thermal equator at te. The profile has three
// cells per hemisphere, with a weaker gradient in the innermost cell.
func DefaultPressureGradient(te, lat float64) float64 {
	var c float64
	if lat > te {
		c = 3 * math.Pi / (math.Pi/2 - te)
	} else {
		c = 3 * math.Pi / (math.Pi/2 + te)
	}
	d := pressureDeviation * math.Sin(c*(lat-te))
	if lat < te+(math.Pi/2-te)/3 && lat > te-(math.Pi/2+te)/3 {
		d /= 3
	}
	return -d
}

// PrevailingWind returns the steady wind resulting from the pressure
// gradient force f (east, north), balanced by friction and deflected by the
// Coriolis effect.
func PrevailingWind(f [2]float64, coriolis, friction float64) Wind {
	offset := math.Atan2(coriolis, friction)
	return Wind{
		Direction: various.Angle2(f) - offset,
		Speed:     various.Len2(f) / math.Hypot(coriolis, friction),
	}
}

// Vector returns the wind as a vector in the tile's (east, north) frame.
func (w Wind) Vector() [2]float64 {
	return [2]float64{w.Speed * math.Cos(w.Direction), w.Speed * math.Sin(w.Direction)}
}

func (s *seasonBuilder) setWind() {
	g := s.grid
	te := s.vars.TropicalEquator
	various.KickOffChunkWorkers(len(s.tiles), func(start, end int) {
		for i := start; i < end; i++ {
			lat := s.latitude[i]
			f := [2]float64{0, DefaultPressureGradient(te, lat)}
			s.tiles[i].Wind = PrevailingWind(f, CoriolisCoefficient(lat), SurfaceFriction)
		}
	})

	// Each edge receives a contribution from both of its tiles, so this
	// part runs sequentially.
	for i := range g.Tiles {
		s.projectWind(i)
	}
}

// projectWind distributes the wind of tile ti onto the flow across its
// edges. An edge facing downwind carries air out of the tile, an edge
// facing upwind carries air into it.
func (s *seasonBuilder) projectWind(ti int) {
	g := s.grid
	t := &g.Tiles[ti]
	w := s.tiles[ti].Wind
	if w.Speed == 0 {
		return
	}
	east, north := various.TangentFrame(s.terrain.Axis, t.V)
	dir := [2]float64{math.Cos(w.Direction), math.Sin(w.Direction)}

	corners := make([][2]float64, len(t.Corners))
	for k, c := range t.Corners {
		corners[k] = various.ToTangent2(vectors.Sub3(g.Corners[c].V, t.V), east, north)
	}
	for k, e := range t.Edges {
		a, b := corners[k], corners[(k+1)%len(corners)]
		side := various.Sub2(b, a)
		l := various.Len2(side)
		if l == 0 {
			continue
		}
		sign := float64(g.Edges[e].Sign(ti))
		if various.Dot2(various.Add2(a, b), dir) > 0 {
			// Downwind, air leaves the tile.
			sign = -sign
		}
		// Only the part of the wind perpendicular to the edge crosses it.
		s.edges[e].WindVelocity += 0.5 * sign * w.Speed * math.Abs(various.Cross2(dir, side)) / l
	}
}
