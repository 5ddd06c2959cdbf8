package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB holds the per-axis extremes of a point set.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// BoundsOf returns the smallest AABB holding every point.
// An empty slice gives the zero AABB.
func BoundsOf(points []mgl64.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]
	for i := 1; i < len(points); i++ {
		p := points[i]

		min[0] = math.Min(min[0], p[0])
		min[1] = math.Min(min[1], p[1])
		min[2] = math.Min(min[2], p[2])

		max[0] = math.Max(max[0], p[0])
		max[1] = math.Max(max[1], p[1])
		max[2] = math.Max(max[2], p[2])
	}

	return AABB{Min: min, Max: max}
}

// MaxAbs returns the largest absolute coordinate found in the box, which is
// the largest absolute coordinate of any point it was built from.
func (a AABB) MaxAbs() float64 {
	scale := 0.0
	for i := 0; i < 3; i++ {
		scale = math.Max(scale, math.Abs(a.Min[i]))
		scale = math.Max(scale, math.Abs(a.Max[i]))
	}
	return scale
}
