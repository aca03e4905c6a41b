package various

import (
	"math"

	"github.com/Flokey82/go_gens/vectors"
)

// HeronsTriArea returns the area of a triangle given the three sides.
// See: https://www.mathopenref.com/heronsformula.html
func HeronsTriArea(a, b, c float64) float64 {
	p := (a + b + c) / 2
	v := p * (p - a) * (p - b) * (p - c)
	if v <= 0 {
		// Degenerate (or rounding just below zero).
		return 0
	}
	return math.Sqrt(v)
}

// TriArea3 returns the area of the flat triangle spanned by the three points.
func TriArea3(a, b, c vectors.Vec3) float64 {
	return HeronsTriArea(Dist3(a, b), Dist3(b, c), Dist3(c, a))
}
