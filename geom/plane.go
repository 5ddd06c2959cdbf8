// Package geom holds the geometric primitives shared by the hull stages:
// supporting planes, point-to-line distance, index triangles and bounds.
//
// Points are mgl64.Vec3 values owned by the caller. Everything downstream of
// the input slice refers to a point by its index.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane is an oriented plane: Normal · p - Offset == 0 for points on it,
// and > 0 for points strictly in front of it (outside the hull).
// Normal is unit length, except for NullPlane.
type Plane struct {
	Normal mgl64.Vec3
	Offset float64
}

// NullPlane is returned for zero-area triangles. Every point has a signed
// distance of zero to it, so it would never report a conflict.
var NullPlane = Plane{}

// PlaneFromPoints builds the plane through a, b and c with normal
// normalize((c-a) × (b-a)). Collinear points yield NullPlane.
func PlaneFromPoints(a, b, c mgl64.Vec3) Plane {
	crx := c.Sub(a).Cross(b.Sub(a))
	n := crx.Len()
	if n == 0 {
		return NullPlane
	}

	return Plane{
		Normal: crx.Mul(1.0 / n),
		Offset: crx.Dot(a) / n,
	}
}

// IsNull reports whether the plane came from a degenerate triangle.
func (p Plane) IsNull() bool {
	return p.Normal[0] == 0 && p.Normal[1] == 0 && p.Normal[2] == 0
}

// SignedDistance returns the distance of point to the plane, positive in front.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Offset
}

// InFront reports whether point lies strictly more than tolerance in front
// of the plane.
func (p Plane) InFront(point mgl64.Vec3, tolerance float64) bool {
	return p.SignedDistance(point) > tolerance
}

// ApproxEqual compares normals and offsets component-wise within tolerance.
func (p Plane) ApproxEqual(other Plane, tolerance float64) bool {
	return math.Abs(p.Normal[0]-other.Normal[0]) <= tolerance &&
		math.Abs(p.Normal[1]-other.Normal[1]) <= tolerance &&
		math.Abs(p.Normal[2]-other.Normal[2]) <= tolerance &&
		math.Abs(p.Offset-other.Offset) <= tolerance
}

// DistanceToLine returns the length of the component of point orthogonal to
// unitDirection. point is taken relative to a point on the line.
func DistanceToLine(point, unitDirection mgl64.Vec3) float64 {
	return point.Sub(unitDirection.Mul(point.Dot(unitDirection))).Len()
}
