package geo

import (
	"log"
	"math"

	"github.com/dmchurch/earthgen/various"
	"gonum.org/v1/gonum/floats"
)

// MaxHumidityPasses caps the number of passes of the humidity solver.
const MaxHumidityPasses = 10000

// humidityNearZero is the magnitude below which a humidity counts as 0.
const humidityNearZero = 1e-15

// setHumidity computes humidity and precipitation. Sea tiles hold saturated
// air; land tiles receive the humidity carried in by the wind and lose
// whatever exceeds saturation as rain. The land values are iterated until
// the largest relative change of a pass is at most tolerance.
// Returns the number of passes.
func (s *seasonBuilder) setHumidity(tolerance float64) int {
	tr := s.terrain
	for i := range s.tiles {
		if tr.Tiles[i].IsWater() {
			s.tiles[i].Humidity = SaturationHumidity(s.tiles[i].Temperature)
		}
	}

	n := len(s.tiles)
	humidity := make([]float64, n)
	precipitation := make([]float64, n)
	change := make([]float64, n)

	var passes int
	for {
		if passes >= MaxHumidityPasses {
			log.Printf("humidity did not converge after %d passes", passes)
			break
		}
		passes++
		various.KickOffChunkWorkers(n, func(start, end int) {
			for i := start; i < end; i++ {
				if tr.Tiles[i].IsWater() {
					humidity[i] = s.tiles[i].Humidity
					precipitation[i] = 0
					change[i] = 0
					continue
				}
				humidity[i], precipitation[i] = s.landHumidity(i)
				change[i] = humidityChange(s.tiles[i].Humidity, humidity[i])
			}
		})
		for i := range s.tiles {
			s.tiles[i].Humidity = humidity[i]
			s.tiles[i].Precipitation = precipitation[i]
		}
		if floats.Max(change) <= tolerance {
			break
		}
	}
	return passes
}

// landHumidity returns the new humidity and precipitation of land tile ti
// based on the current humidity of its neighbours.
func (s *seasonBuilder) landHumidity(ti int) (float64, float64) {
	g := s.grid
	t := &g.Tiles[ti]

	var inflow, outflow, incoming float64
	for k, e := range t.Edges {
		v := s.edges[e].WindVelocity
		flow := math.Abs(v) * s.length[e]
		switch into := float64(g.Edges[e].Sign(ti)) * v; {
		case into > 0:
			inflow += flow
			incoming += s.tiles[t.Tiles[k]].Humidity * flow
		case into < 0:
			outflow += flow
		}
	}
	if inflow <= 0 {
		return 0, 0
	}

	sat := SaturationHumidity(s.tiles[ti].Temperature)
	convergence := outflow - inflow

	var density float64
	if convergence > 0 {
		density = incoming / (inflow + convergence)
	} else {
		density = incoming / inflow
	}

	var precipitation float64
	humidity := math.Min(sat, density)
	if density > sat {
		precipitation += (density - sat) * inflow
	}
	if convergence < 0 {
		// More air comes in than goes out, the surplus rises and adds its
		// moisture.
		convective := humidity * (-convergence / inflow)
		if humidity+convective > sat {
			precipitation += (humidity + convective - sat) * -convergence
		}
		humidity = math.Min(sat, humidity+convective)
	}
	return humidity, precipitation * 3 / s.area[ti]
}

// humidityChange returns the relative change between two humidity values.
func humidityChange(before, after float64) float64 {
	if math.Abs(before) < humidityNearZero {
		if math.Abs(after) < humidityNearZero {
			return 0
		}
		return 1
	}
	if math.Abs(after) < humidityNearZero {
		return 1
	}
	return math.Abs(after-before) / math.Abs(after)
}
