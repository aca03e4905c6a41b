package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// Add3 returns the sum of two vectors.
func Add3(a, b vectors.Vec3) vectors.Vec3 {
	return vectors.Vec3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Dist3 returns the eucledian distance between two points.
func Dist3(a, b vectors.Vec3) float64 {
	return vectors.Sub3(a, b).Len()
}

// DistSq3 returns the squared distance between two points.
func DistSq3(a, b vectors.Vec3) float64 {
	d := vectors.Sub3(a, b)
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z
}

// Angle3 returns the angle between two vectors in radians.
func Angle3(a, b vectors.Vec3) float64 {
	l := a.Len() * b.Len()
	if l == 0 {
		return 0
	}
	return math.Acos(Clamp(vectors.Dot3(a, b)/l, -1, 1))
}

// IsZero3 returns true if all components of v are zero.
func IsZero3(v vectors.Vec3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Perpendicular3 returns some unit vector perpendicular to v.
func Perpendicular3(v vectors.Vec3) vectors.Vec3 {
	// Cross with the coordinate axis least aligned with v.
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	ref := vectors.Vec3{X: 1}
	if ay <= ax && ay <= az {
		ref = vectors.Vec3{Y: 1}
	} else if az <= ax && az <= ay {
		ref = vectors.Vec3{Z: 1}
	}
	return v.Cross(ref).Normalize()
}

// Dot2 returns the dot product of two vectors.
func Dot2(a, b [2]float64) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

// Len2 returns the length of the given vector.
func Len2(a [2]float64) float64 {
	return math.Sqrt(a[0]*a[0] + a[1]*a[1])
}

// Add2 returns the sum of two vectors.
func Add2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] + b[0], a[1] + b[1]}
}

// Sub2 returns the difference of two vectors.
func Sub2(a, b [2]float64) [2]float64 {
	return [2]float64{a[0] - b[0], a[1] - b[1]}
}

// Cross2 returns the cross product of two vectors.
func Cross2(a, b [2]float64) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// Angle2 returns the direction of v in radians, counter-clockwise from +x.
func Angle2(v [2]float64) float64 {
	return math.Atan2(v[1], v[0])
}
