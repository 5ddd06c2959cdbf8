// Package polytope grows a convex hull one point at a time.
//
// The Builder keeps a face table (triangles, their supporting planes and a
// liveness flag per slot) seeded with a tetrahedron. Each new point removes
// every face it sees and stitches the boundary of the removed region, the
// horizon, to itself.
//
// Every insertion scans all face slots, so building a hull is
// O(points × slots). No conflict lists are kept between insertions.
// Removed slots go on a free list and are reused first, which bounds the
// table by the peak number of live faces rather than by the number of faces
// ever created.
package polytope

import (
	"sync"

	"github.com/akmonengine/hull/geom"
	"github.com/akmonengine/hull/simplex"
	"github.com/go-gl/mathgl/mgl64"
)

// initialCapacity fits the seed tetrahedron plus a few expansions.
const initialCapacity = 16

// Builder manages the face table of a growing hull.
type Builder struct {
	points    []mgl64.Vec3
	tolerance float64

	// Parallel slices indexed by slot
	triangles []geom.Triangle
	planes    []geom.Plane
	live      []bool

	// Tombstoned slots, reused LIFO
	free []int

	horizon horizon

	created int
	removed int
}

// Stats describes the face table.
type Stats struct {
	Live    int // faces currently on the hull
	Slots   int // physical size of the face table
	Created int // faces created since Seed
	Removed int // faces removed since Seed
}

var builderPool = sync.Pool{
	New: func() interface{} {
		return NewBuilder()
	},
}

// NewBuilder allocates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		triangles: make([]geom.Triangle, 0, initialCapacity),
		planes:    make([]geom.Plane, 0, initialCapacity),
		live:      make([]bool, 0, initialCapacity),
		free:      make([]int, 0, initialCapacity),
		horizon:   newHorizon(),
	}
}

// Acquire takes a reset builder from the pool.
func Acquire() *Builder {
	b := builderPool.Get().(*Builder)
	b.Reset()
	return b
}

// Release returns b to the pool. b must not be used afterwards.
func Release(b *Builder) {
	b.Reset()
	builderPool.Put(b)
}

// Reset clears all state so the builder can be seeded again.
func (b *Builder) Reset() {
	b.points = nil
	b.tolerance = 0
	b.triangles = b.triangles[:0]
	b.planes = b.planes[:0]
	b.live = b.live[:0]
	b.free = b.free[:0]
	b.horizon.clear()
	b.created = 0
	b.removed = 0
}

// Seed installs the four faces of the tetrahedron s. The points slice is
// read, never written, and must outlive the builder's use.
func (b *Builder) Seed(points []mgl64.Vec3, s simplex.Simplex, tolerance float64) {
	b.points = points
	b.tolerance = tolerance

	// Plane order; each face omits one vertex and has it behind its plane.
	b.addFace(s.A, s.B, s.C)
	b.addFace(s.D, s.B, s.A)
	b.addFace(s.C, s.D, s.A)
	b.addFace(s.B, s.D, s.C)
}

// AddPoint inserts the point at index into the hull and returns the number
// of faces it removed. Zero means the point was inside or on the hull and
// nothing changed.
//
// Algorithm:
//  1. Every live face whose plane has the point more than tolerance in front
//     is in conflict: its edges go into the horizon set and it is tombstoned
//  2. Edges shared by two removed faces cancel, leaving the horizon loop
//  3. Each horizon edge (u, v) becomes the face (u, v, index)
func (b *Builder) AddPoint(index int) int {
	p := b.points[index]

	removed := 0
	for slot := range b.triangles {
		if !b.live[slot] || !b.planes[slot].InFront(p, b.tolerance) {
			continue
		}

		// Stored triangles are reversed, so flip back to plane order.
		for _, e := range b.triangles[slot].Reversed().Edges() {
			b.horizon.add(e)
		}
		b.removeFace(slot)
		removed++
	}

	for _, e := range b.horizon.edges {
		b.addFace(e.From, e.To, index)
	}
	b.horizon.clear()

	return removed
}

// Triangles returns the live faces in a new slice.
func (b *Builder) Triangles() []geom.Triangle {
	out := make([]geom.Triangle, 0, len(b.triangles)-len(b.free))
	for slot, tri := range b.triangles {
		if b.live[slot] {
			out = append(out, tri)
		}
	}
	return out
}

// Planes returns the supporting planes of the live faces, in the same order
// as Triangles.
func (b *Builder) Planes() []geom.Plane {
	out := make([]geom.Plane, 0, len(b.planes)-len(b.free))
	for slot, plane := range b.planes {
		if b.live[slot] {
			out = append(out, plane)
		}
	}
	return out
}

// Stats reports the current size of the face table.
func (b *Builder) Stats() Stats {
	return Stats{
		Live:    len(b.triangles) - len(b.free),
		Slots:   len(b.triangles),
		Created: b.created,
		Removed: b.removed,
	}
}

// addFace stores the face whose plane is computed from (i, j, k). The stored
// triangle is (k, j, i) so its winding matches the outward normal.
func (b *Builder) addFace(i, j, k int) {
	tri := geom.Triangle{k, j, i}
	plane := geom.PlaneFromPoints(b.points[i], b.points[j], b.points[k])
	b.created++

	if n := len(b.free); n > 0 {
		slot := b.free[n-1]
		b.free = b.free[:n-1]

		b.triangles[slot] = tri
		b.planes[slot] = plane
		b.live[slot] = true
		return
	}

	b.triangles = append(b.triangles, tri)
	b.planes = append(b.planes, plane)
	b.live = append(b.live, true)
}

func (b *Builder) removeFace(slot int) {
	b.live[slot] = false
	b.free = append(b.free, slot)
	b.removed++
}
