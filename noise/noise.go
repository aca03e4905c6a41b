package noise

import (
	"crypto/md5"
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/Flokey82/go_gens/vectors"
	"github.com/dmchurch/earthgen/various"
)

// clusterRadiusSq is the squared chord distance below which a point counts
// as being close to one of the three cluster points of a bump.
const clusterRadiusSq = 2.0

// Bumps is an elevation sampler made of random point triples on the unit
// sphere. The value at a point is the number of triples whose three points
// are all within the cluster radius of it.
type Bumps struct {
	Seed    int64
	Triples [][3]vectors.Vec3
}

// SeedFromString derives a 64 bit seed from an arbitrary string.
// The empty string is a valid seed.
func SeedFromString(s string) int64 {
	sum := md5.Sum([]byte(s))
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

// NewBumps returns a new sampler with the given number of triples drawn
// from a generator seeded with the given seed string.
func NewBumps(seed string, iterations int) *Bumps {
	if iterations < 0 {
		iterations = 0
	}
	b := &Bumps{
		Seed:    SeedFromString(seed),
		Triples: make([][3]vectors.Vec3, iterations),
	}
	rng := rand.New(rand.NewSource(b.Seed))
	for i := range b.Triples {
		for j := 0; j < 3; j++ {
			b.Triples[i][j] = PointUniform(rng.Float64(), rng.Float64())
		}
	}
	return b
}

// PointUniform maps two uniform values in [0, 1) to a point uniformly
// distributed on the unit sphere.
func PointUniform(a, b float64) vectors.Vec3 {
	x := 2 * math.Pi * a
	y := math.Acos(2*b-1) - math.Pi/2
	return vectors.Vec3{
		X: math.Sin(x) * math.Cos(y),
		Y: math.Sin(y),
		Z: math.Cos(x) * math.Cos(y),
	}
}

// Eval3 returns the (unscaled) elevation at the given point.
func (b *Bumps) Eval3(p vectors.Vec3) float64 {
	var n int
	for _, t := range b.Triples {
		if various.DistSq3(p, t[0]) < clusterRadiusSq &&
			various.DistSq3(p, t[1]) < clusterRadiusSq &&
			various.DistSq3(p, t[2]) < clusterRadiusSq {
			n++
		}
	}
	return float64(n)
}
