package geom

import "math"

// Tolerance groups the two thresholds the hull works with.
type Tolerance struct {
	// Distance is absolute. It is compared directly against signed
	// distances to planes and against the seed line length.
	Distance float64
	// Extent is relative. It is multiplied by the length of the seed line
	// before being compared against perpendicular offsets from that line.
	Extent float64
}

// Uniform uses the same value for both thresholds.
func Uniform(t float64) Tolerance {
	return Tolerance{Distance: t, Extent: t}
}

// Valid reports whether both thresholds are finite and non-negative.
func (t Tolerance) Valid() bool {
	return valid(t.Distance) && valid(t.Extent)
}

func valid(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
