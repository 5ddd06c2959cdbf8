// Package simplex finds the seed tetrahedron an incremental hull grows from.
//
// Find either returns four point indices that are provably not coplanar, or
// an error explaining why the point set has no volume:
//   - ErrTooFewPoints: fewer than four points
//   - ErrCoincident: every point lies within tolerance of point 0
//   - ErrCollinear: every point lies within tolerance of one line
//   - ErrCoplanar: every point lies within tolerance of one plane
//
// All of them wrap ErrDegenerate, so callers that only care about "no hull"
// can test for that.
package simplex

import (
	"errors"
	"fmt"

	"github.com/akmonengine/hull/geom"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrDegenerate   = errors.New("degenerate point set")
	ErrTooFewPoints = fmt.Errorf("%w: fewer than 4 points", ErrDegenerate)
	ErrCoincident   = fmt.Errorf("%w: all points coincide", ErrDegenerate)
	ErrCollinear    = fmt.Errorf("%w: all points are collinear", ErrDegenerate)
	ErrCoplanar     = fmt.Errorf("%w: all points are coplanar", ErrDegenerate)
)

// Simplex is a non-degenerate tetrahedron given by point indices.
// The plane through A, B, C (in geom.PlaneFromPoints order) has D behind it.
type Simplex struct {
	A, B, C, D int
}

// Indices returns the four vertex indices.
func (s Simplex) Indices() [4]int {
	return [4]int{s.A, s.B, s.C, s.D}
}

// Contains reports whether index is one of the four seed vertices.
func (s Simplex) Contains(index int) bool {
	return index == s.A || index == s.B || index == s.C || index == s.D
}

// Find selects the seed tetrahedron of points.
//
// Algorithm:
//  1. Point 0 is the anchor; the point furthest from it spans the seed line
//  2. The point furthest from that line completes a non-collinear triple
//  3. The first point off the triple's plane is the apex
//  4. The two in-plane points are ordered so the apex lies behind the base
func Find(points []mgl64.Vec3, tol geom.Tolerance) (Simplex, error) {
	if len(points) < 4 {
		return Simplex{}, ErrTooFewPoints
	}

	a, b, c, err := nonCollinearTriple(points, tol)
	if err != nil {
		return Simplex{}, err
	}

	base := geom.PlaneFromPoints(points[a], points[b], points[c])
	if base.IsNull() {
		// nonCollinearTriple guarantees a positive offset, but a zero-length
		// cross product can still appear through underflow.
		return Simplex{}, ErrCollinear
	}

	d, inFront, err := nonCoplanar(points, base, tol.Distance)
	if err != nil {
		return Simplex{}, err
	}

	if inFront {
		b, c = c, b
	}

	return Simplex{A: a, B: b, C: c, D: d}, nil
}

// nonCollinearTriple returns three indices whose triangle has a non-zero
// area relative to the tolerances.
func nonCollinearTriple(points []mgl64.Vec3, tol geom.Tolerance) (int, int, int, error) {
	anchor := points[0]

	furthest := 1
	dist := anchor.Sub(points[1]).Len()
	for i := 2; i < len(points); i++ {
		if d := anchor.Sub(points[i]).Len(); d > dist {
			furthest = i
			dist = d
		}
	}
	if dist <= tol.Distance {
		return -1, -1, -1, ErrCoincident
	}

	direction := anchor.Sub(points[furthest]).Mul(1.0 / dist)

	third := -1
	offset := tol.Extent * dist
	for i := 1; i < len(points); i++ {
		if off := geom.DistanceToLine(points[i].Sub(anchor), direction); off > offset {
			third = i
			offset = off
		}
	}
	if third < 0 {
		return -1, -1, -1, ErrCollinear
	}

	return 0, furthest, third, nil
}

// nonCoplanar returns the first point further than tolerance from plane and
// whether it lies in front of it.
func nonCoplanar(points []mgl64.Vec3, plane geom.Plane, tolerance float64) (int, bool, error) {
	for i, p := range points {
		d := plane.SignedDistance(p)
		if d > tolerance {
			return i, true, nil
		}
		if d < -tolerance {
			return i, false, nil
		}
	}
	return -1, false, ErrCoplanar
}
