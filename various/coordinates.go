package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// LatitudeAround returns the latitude of p in radians on a sphere rotating
// around axis.
func LatitudeAround(axis, p vectors.Vec3) float64 {
	return math.Pi/2 - Angle3(axis, p)
}

// LongitudeAround returns the longitude of p in radians on a sphere rotating
// around axis. The zero meridian is an arbitrary but fixed direction
// perpendicular to the axis.
func LongitudeAround(axis, p vectors.Vec3) float64 {
	a := axis.Normalize()
	ref0 := Perpendicular3(a)
	ref1 := a.Cross(ref0)
	return math.Atan2(vectors.Dot3(p, ref1), vectors.Dot3(p, ref0))
}

// LatLonAround returns latitude and longitude of p in degrees.
func LatLonAround(axis, p vectors.Vec3) (float64, float64) {
	return RadToDeg(LatitudeAround(axis, p)), RadToDeg(LongitudeAround(axis, p))
}

// FromLatLonAround is the inverse of LatLonAround (degrees in, unit vector out).
func FromLatLonAround(axis vectors.Vec3, latDeg, lonDeg float64) vectors.Vec3 {
	a := axis.Normalize()
	ref0 := Perpendicular3(a)
	ref1 := a.Cross(ref0)
	lat, lon := DegToRad(latDeg), DegToRad(lonDeg)
	eq := Add3(ref0.Mul(math.Cos(lon)), ref1.Mul(math.Sin(lon)))
	return Add3(eq.Mul(math.Cos(lat)), a.Mul(math.Sin(lat))).Normalize()
}

// TangentFrame returns the local east and north unit vectors at the point p
// on a sphere rotating around axis. At the poles east is an arbitrary
// direction perpendicular to the axis.
func TangentFrame(axis, p vectors.Vec3) (east, north vectors.Vec3) {
	east = axis.Cross(p)
	if east.Len() < 1e-12 {
		east = Perpendicular3(p)
	} else {
		east = east.Normalize()
	}
	north = p.Normalize().Cross(east)
	return east, north
}

// ToTangent2 projects v onto the plane spanned by east and north.
func ToTangent2(v, east, north vectors.Vec3) [2]float64 {
	return [2]float64{vectors.Dot3(v, east), vectors.Dot3(v, north)}
}
