package geo

import "math"

// Solar constant [ MJ m-2 min-1]
const solarConstant = 0.0820

// Calculate sunset hour angle (*Ws*) from latitude and solar
// declination. Based on FAO equation 25 in Allen et al (1998).
//
// 'latRad': Latitude [radians], negative in the southern hemisphere.
// 'solDec': Solar declination [radians].
//
// Returns sunset hour angle [radians].
func sunsetHourAngle(latRad, solDec float64) float64 {
	cosSha := -math.Tan(latRad) * math.Tan(solDec)
	// If cosSha is >= 1 there is no sunset, i.e. 24 hours of daylight.
	// If cosSha is <= -1 there is no sunrise, i.e. 24 hours of darkness.
	return math.Acos(math.Min(math.Max(cosSha, -1.0), 1.0))
}

// Calculate daylight hours from sunset hour angle.
// Based on FAO equation 34 in Allen et al (1998).
func daylightHours(sha float64) float64 {
	return (24.0 / math.Pi) * sha
}

// Estimate daily extraterrestrial radiation (*Ra*, 'top of the atmosphere
// radiation') for a planet on a circular orbit.
// Based on equation 21 in Allen et al (1998).
//
// Returns daily extraterrestrial radiation [MJ m-2 day-1]
func extraterrRadiation(latRad, solDec, sha float64) float64 {
	tmp1 := (24.0 * 60.0) / math.Pi
	tmp2 := sha * math.Sin(latRad) * math.Sin(solDec)
	tmp3 := math.Cos(latRad) * math.Cos(solDec) * math.Sin(sha)
	return tmp1 * solarConstant * (tmp2 + tmp3)
}

// DaylightHours returns the length of the day at the given latitude
// (radians) in this season. The solar equator is used as declination.
func (s *Season) DaylightHours(lat float64) float64 {
	return daylightHours(sunsetHourAngle(lat, s.SolarEquator))
}

// Insolation returns the daily top of the atmosphere radiation at the given
// latitude (radians) in this season [MJ m-2 day-1].
func (s *Season) Insolation(lat float64) float64 {
	return extraterrRadiation(lat, s.SolarEquator, sunsetHourAngle(lat, s.SolarEquator))
}
