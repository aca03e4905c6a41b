package geo

import (
	"math"

	"github.com/Flokey82/go_gens/gameconstants"
	"github.com/dmchurch/earthgen/various"
)

// TemperatureLapseRate is the temperature drop per meter above sea level
// (approx. 9.8 °C per 1000 m).
var TemperatureLapseRate = gameconstants.EarthElevationTemperatureFalloff

// TemperatureAtLatitude returns the sea level temperature in Kelvin at the
// given angular distance from the thermal equator.
func TemperatureAtLatitude(lat float64) float64 {
	return FreezingPoint - 25 + 50*math.Cos(lat)
}

// ElevationTemperatureFalloff returns the cooling of a point at the given
// height above sea level. Points below sea level are not warmed up.
func ElevationTemperatureFalloff(height float64) float64 {
	if height < 0 {
		return 0
	}
	return TemperatureLapseRate * height
}

func (s *seasonBuilder) setTemperature() {
	tr := s.terrain
	various.KickOffChunkWorkers(len(s.tiles), func(start, end int) {
		for i := start; i < end; i++ {
			lat := s.latitude[i]
			temp := TemperatureAtLatitude(s.vars.TropicalEquator - lat)
			if tt := &tr.Tiles[i]; tt.IsLand() {
				temp -= ElevationTemperatureFalloff(tt.Elevation - tr.SeaLevel)
			} else {
				// The sea mostly keeps the yearly mean.
				temp = 0.3*temp + 0.7*TemperatureAtLatitude(lat)
			}
			s.tiles[i].Temperature = temp
		}
	})
}
