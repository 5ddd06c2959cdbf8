package geom

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromR3 converts gonum vectors into hull input points.
func FromR3(vs []r3.Vec) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, len(vs))
	for i, v := range vs {
		points[i] = mgl64.Vec3{v.X, v.Y, v.Z}
	}
	return points
}

// ToR3 converts hull points back into gonum vectors.
func ToR3(points []mgl64.Vec3) []r3.Vec {
	vs := make([]r3.Vec, len(points))
	for i, p := range points {
		vs[i] = r3.Vec{X: p[0], Y: p[1], Z: p[2]}
	}
	return vs
}
