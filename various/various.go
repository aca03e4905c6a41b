package various

import "math"

// RoundToDecimals rounds the given float to the given number of decimals.
func RoundToDecimals(v, d float64) float64 {
	m := math.Pow(10, d)
	return math.Round(v*m) / m
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}

// Wrap maps n into [0, size) for both positive and negative n.
func Wrap(n, size int) int {
	k := n % size
	if k < 0 {
		k += size
	}
	return k
}
