package hull

import (
	"errors"
	"fmt"

	"github.com/akmonengine/hull/geom"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrIndexRange     = errors.New("face index out of range")
	ErrDegenerateFace = errors.New("face has zero area")
	ErrNotConvex      = errors.New("point in front of face")
	ErrOpenSurface    = errors.New("surface is not closed")
)

// Planes returns the outward supporting plane of each face.
func Planes(points []mgl64.Vec3, tris []Triangle) []geom.Plane {
	planes := make([]geom.Plane, len(tris))
	for i, tri := range tris {
		// Reversed back to the order the plane's normal is defined for.
		planes[i] = geom.PlaneFromPoints(points[tri[2]], points[tri[1]], points[tri[0]])
	}
	return planes
}

// Validate checks that tris is a closed, outward-wound convex surface over
// points:
//   - every index is in range
//   - no face has zero area
//   - no point lies more than tolerance in front of any face
//   - every directed edge is matched by exactly one opposite edge
//
// The first violation found is returned.
func Validate(points []mgl64.Vec3, tris []Triangle, tolerance float64) error {
	for f, tri := range tris {
		for _, i := range tri {
			if i < 0 || i >= len(points) {
				return fmt.Errorf("%w: face %d %v with %d points", ErrIndexRange, f, tri, len(points))
			}
		}
	}

	for f, plane := range Planes(points, tris) {
		if plane.IsNull() {
			return fmt.Errorf("%w: face %d %v", ErrDegenerateFace, f, tris[f])
		}
		for i, p := range points {
			if d := plane.SignedDistance(p); d > tolerance {
				return fmt.Errorf("%w: point %d is %g in front of face %d %v", ErrNotConvex, i, d, f, tris[f])
			}
		}
	}

	edges := make(map[geom.Edge]int, 3*len(tris))
	for _, tri := range tris {
		for _, e := range tri.Edges() {
			edges[e]++
		}
	}
	for e, n := range edges {
		if n != 1 {
			return fmt.Errorf("%w: edge %v used %d times", ErrOpenSurface, e, n)
		}
		if edges[e.Reverse()] != 1 {
			return fmt.Errorf("%w: edge %v has no opposite", ErrOpenSurface, e)
		}
	}

	return nil
}
