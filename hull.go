// Package hull computes the triangulated 3D convex hull of a point set.
//
// The hull is built incrementally: a seed tetrahedron is found among the
// points, then every remaining point replaces the faces it can see with
// faces joining it to the boundary of that region.
//
// Faces are returned as index triples into the caller's points, wound so
// that (p[t1]-p[t0]) × (p[t2]-p[t0]) points away from the solid. A point
// set without volume (fewer than 4 points, all collinear or all coplanar
// within tolerance) has no hull: Hull and Compute return nil, Build returns
// the reason.
package hull

import (
	"errors"
	"fmt"
	"log"

	"github.com/akmonengine/hull/geom"
	"github.com/akmonengine/hull/polytope"
	"github.com/akmonengine/hull/simplex"
	"github.com/go-gl/mathgl/mgl64"
)

// RelativePrecision scales the largest absolute coordinate of a point set
// into the absolute tolerance used by Compute.
const RelativePrecision = 1e-9

var ErrInvalidTolerance = errors.New("tolerance must be finite and non-negative")

// Triangle is one hull face.
type Triangle = geom.Triangle

// Config controls Build.
type Config struct {
	Tolerance geom.Tolerance
	// Logger, if set, receives one line per Build call.
	Logger *log.Logger
}

// Hull returns the faces of the convex hull of points using an absolute
// tolerance, or nil when the points span no volume.
func Hull(points []mgl64.Vec3, tolerance float64) []Triangle {
	tris, err := Build(points, Config{Tolerance: geom.Uniform(tolerance)})
	if err != nil {
		return nil
	}
	return tris
}

// Compute is Hull with a tolerance derived from the magnitude of the
// coordinates (see EstimateTolerance).
func Compute(points []mgl64.Vec3) []Triangle {
	return Hull(points, EstimateTolerance(points))
}

// EstimateTolerance returns RelativePrecision times the largest absolute
// coordinate in points. Points all at the origin give zero, which turns
// every test into an exact comparison.
func EstimateTolerance(points []mgl64.Vec3) float64 {
	return RelativePrecision * geom.BoundsOf(points).MaxAbs()
}

// Build computes the hull and reports why it could not when the point set
// is degenerate. Errors wrap simplex.ErrDegenerate or ErrInvalidTolerance.
//
// Each point is tested against every face slot, so the cost is
// O(len(points) × faces).
func Build(points []mgl64.Vec3, cfg Config) ([]Triangle, error) {
	if !cfg.Tolerance.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidTolerance, cfg.Tolerance)
	}

	seed, err := simplex.Find(points, cfg.Tolerance)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Printf("hull: %d points: %v", len(points), err)
		}
		return nil, fmt.Errorf("hull of %d points: %w", len(points), err)
	}

	builder := polytope.Acquire()
	defer polytope.Release(builder)

	builder.Seed(points, seed, cfg.Tolerance.Distance)

	discarded := 0
	for i := range points {
		if seed.Contains(i) {
			continue
		}
		if builder.AddPoint(i) == 0 {
			discarded++
		}
	}

	tris := builder.Triangles()
	if cfg.Logger != nil {
		stats := builder.Stats()
		cfg.Logger.Printf("hull: %d points, %d faces, %d points inside, %d slots for %d faces created",
			len(points), len(tris), discarded, stats.Slots, stats.Created)
	}

	return tris, nil
}
