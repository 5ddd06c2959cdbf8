package polytope

import (
	"math"
	"testing"

	"github.com/akmonengine/hull/geom"
	"github.com/akmonengine/hull/simplex"
	"github.com/go-gl/mathgl/mgl64"
)

const testTolerance = 1e-9

func tetrahedron() []mgl64.Vec3 {
	return []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// fibonacciSphere places n points on the unit sphere, all in convex position.
func fibonacciSphere(n int) []mgl64.Vec3 {
	points := make([]mgl64.Vec3, n)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < n; i++ {
		y := 1 - 2*(float64(i)+0.5)/float64(n)
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		points[i] = mgl64.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)}
	}
	return points
}

func seededBuilder(t *testing.T, points []mgl64.Vec3) (*Builder, simplex.Simplex) {
	t.Helper()

	s, err := simplex.Find(points, geom.Uniform(testTolerance))
	if err != nil {
		t.Fatalf("simplex.Find() error = %v", err)
	}

	b := NewBuilder()
	b.Seed(points, s, testTolerance)
	return b, s
}

// seedOutside seeds a builder with the unit tetrahedron and appends extra
// points after it, so none of them can be picked as a seed vertex.
func seedOutside(t *testing.T, extra ...mgl64.Vec3) (*Builder, []mgl64.Vec3) {
	t.Helper()

	s, err := simplex.Find(tetrahedron(), geom.Uniform(testTolerance))
	if err != nil {
		t.Fatalf("simplex.Find() error = %v", err)
	}

	points := append(tetrahedron(), extra...)
	for i := 4; i < len(points); i++ {
		if s.Contains(i) {
			t.Fatalf("point %d is a seed vertex of %+v", i, s)
		}
	}

	b := NewBuilder()
	b.Seed(points, s, testTolerance)
	return b, points
}

func buildAll(t *testing.T, points []mgl64.Vec3) *Builder {
	t.Helper()

	b, s := seededBuilder(t, points)
	for i := range points {
		if s.Contains(i) {
			continue
		}
		b.AddPoint(i)
	}
	return b
}

// checkClosed verifies that every directed edge is matched by its reverse
// exactly once.
func checkClosed(t *testing.T, tris []geom.Triangle) {
	t.Helper()

	edges := map[geom.Edge]int{}
	for _, tri := range tris {
		for _, e := range tri.Edges() {
			edges[e]++
		}
	}
	for e, n := range edges {
		if n != 1 {
			t.Errorf("directed edge %v appears %d times", e, n)
		}
		if edges[e.Reverse()] != 1 {
			t.Errorf("edge %v has no opposite", e)
		}
	}
}

// checkConvex verifies that no point lies in front of any face.
func checkConvex(t *testing.T, points []mgl64.Vec3, b *Builder) {
	t.Helper()

	for f, plane := range b.Planes() {
		if plane.IsNull() {
			t.Errorf("face %d has a null plane", f)
			continue
		}
		for i, p := range points {
			if d := plane.SignedDistance(p); d > testTolerance {
				t.Errorf("point %d is %v in front of face %d", i, d, f)
			}
		}
	}
}

// checkWinding verifies that each triangle's winding agrees with its plane.
func checkWinding(t *testing.T, points []mgl64.Vec3, b *Builder) {
	t.Helper()

	planes := b.Planes()
	for f, tri := range b.Triangles() {
		p0, p1, p2 := points[tri[0]], points[tri[1]], points[tri[2]]
		normal := p1.Sub(p0).Cross(p2.Sub(p0))
		if normal.Dot(planes[f].Normal) <= 0 {
			t.Errorf("face %v winds against its plane normal %v", tri, planes[f].Normal)
		}
	}
}

func TestHorizon(t *testing.T) {
	t.Run("reverse cancels", func(t *testing.T) {
		h := newHorizon()
		h.add(geom.Edge{From: 1, To: 2})
		h.add(geom.Edge{From: 2, To: 1})
		if h.len() != 0 {
			t.Errorf("len = %d, want 0", h.len())
		}
	})

	t.Run("loop survives", func(t *testing.T) {
		h := newHorizon()
		h.add(geom.Edge{From: 1, To: 2})
		h.add(geom.Edge{From: 2, To: 3})
		h.add(geom.Edge{From: 3, To: 1})
		if h.len() != 3 {
			t.Fatalf("len = %d, want 3", h.len())
		}

		h.add(geom.Edge{From: 3, To: 2})
		if h.len() != 2 {
			t.Fatalf("len = %d, want 2", h.len())
		}
		if h.contains(geom.Edge{From: 2, To: 3}) || h.contains(geom.Edge{From: 3, To: 2}) {
			t.Error("cancelled edge is still present")
		}
		if !h.contains(geom.Edge{From: 1, To: 2}) || !h.contains(geom.Edge{From: 3, To: 1}) {
			t.Error("untouched edges were lost")
		}
	})

	t.Run("two adjacent triangles leave a quad", func(t *testing.T) {
		h := newHorizon()
		for _, e := range (geom.Triangle{0, 1, 2}).Edges() {
			h.add(e)
		}
		for _, e := range (geom.Triangle{0, 2, 3}).Edges() {
			h.add(e)
		}
		if h.len() != 4 {
			t.Errorf("len = %d, want 4", h.len())
		}
		for _, e := range []geom.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}} {
			if !h.contains(e) {
				t.Errorf("missing boundary edge %v", e)
			}
		}
	})

	t.Run("clear empties the set", func(t *testing.T) {
		h := newHorizon()
		h.add(geom.Edge{From: 4, To: 5})
		h.clear()
		if h.len() != 0 || h.contains(geom.Edge{From: 4, To: 5}) {
			t.Error("clear left edges behind")
		}
	})
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name   string
		points []mgl64.Vec3
	}{
		{"unit tetrahedron", tetrahedron()},
		{"mirrored tetrahedron", []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, -1}}},
		{"offset tetrahedron", []mgl64.Vec3{{10, 10, 10}, {12, 10, 10}, {10, 13, 10}, {11, 11, 14}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := seededBuilder(t, tt.points)

			stats := b.Stats()
			if stats.Live != 4 || stats.Slots != 4 || stats.Created != 4 || stats.Removed != 0 {
				t.Errorf("Stats() = %+v after seeding", stats)
			}

			tris := b.Triangles()
			if len(tris) != 4 {
				t.Fatalf("got %d faces, want 4", len(tris))
			}
			checkClosed(t, tris)
			checkConvex(t, tt.points, b)
			checkWinding(t, tt.points, b)
		})
	}
}

func TestAddPoint_Inside(t *testing.T) {
	points := append(tetrahedron(), mgl64.Vec3{0.1, 0.1, 0.1}, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.5, 0})
	b, _ := seededBuilder(t, points)
	before := b.Triangles()

	for i := 4; i < len(points); i++ {
		if removed := b.AddPoint(i); removed != 0 {
			t.Errorf("AddPoint(%d) removed %d faces, want 0", i, removed)
		}
	}

	after := b.Triangles()
	if len(after) != len(before) {
		t.Fatalf("face count changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("face %d changed from %v to %v", i, before[i], after[i])
		}
	}
}

func TestAddPoint_SingleVisibleFace(t *testing.T) {
	// Only the slanted face x+y+z=1 sees this point.
	b, points := seedOutside(t, mgl64.Vec3{1, 1, 1})

	if removed := b.AddPoint(4); removed != 1 {
		t.Fatalf("AddPoint removed %d faces, want 1", removed)
	}

	stats := b.Stats()
	expected := Stats{Live: 6, Slots: 6, Created: 7, Removed: 1}
	if stats != expected {
		t.Errorf("Stats() = %+v, want %+v", stats, expected)
	}

	tris := b.Triangles()
	checkClosed(t, tris)
	checkConvex(t, points, b)
	checkWinding(t, points, b)

	withApex := 0
	for _, tri := range tris {
		if tri.Contains(4) {
			withApex++
		}
	}
	if withApex != 3 {
		t.Errorf("%d faces use the new point, want 3", withApex)
	}
}

func TestAddPoint_Sphere(t *testing.T) {
	points := fibonacciSphere(200)
	b := buildAll(t, points)

	tris := b.Triangles()
	checkClosed(t, tris)
	checkConvex(t, points, b)
	checkWinding(t, points, b)

	vertices := map[int]bool{}
	for _, tri := range tris {
		for _, i := range tri {
			vertices[i] = true
		}
	}
	// Euler: a closed triangulated sphere has F = 2V - 4.
	if len(tris) != 2*len(vertices)-4 {
		t.Errorf("got %d faces for %d vertices", len(tris), len(vertices))
	}

	stats := b.Stats()
	if stats.Live != len(tris) {
		t.Errorf("Stats().Live = %d, want %d", stats.Live, len(tris))
	}
	if stats.Created-stats.Removed != stats.Live {
		t.Errorf("created %d - removed %d != live %d", stats.Created, stats.Removed, stats.Live)
	}
	if stats.Slots >= stats.Created {
		t.Errorf("slots %d not reused: %d faces created", stats.Slots, stats.Created)
	}
}

func TestAddPoint_Deterministic(t *testing.T) {
	points := fibonacciSphere(64)

	first := buildAll(t, points).Triangles()
	second := buildAll(t, points).Triangles()

	if len(first) != len(second) {
		t.Fatalf("face counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("face %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestPool(t *testing.T) {
	points := append(tetrahedron(), mgl64.Vec3{1, 1, 1})
	s, err := simplex.Find(tetrahedron(), geom.Uniform(testTolerance))
	if err != nil {
		t.Fatalf("simplex.Find() error = %v", err)
	}

	b := Acquire()
	b.Seed(points, s, testTolerance)
	if removed := b.AddPoint(4); removed != 1 {
		t.Fatalf("AddPoint removed %d faces, want 1", removed)
	}
	Release(b)

	b = Acquire()
	defer Release(b)
	if stats := b.Stats(); stats != (Stats{}) {
		t.Errorf("acquired builder is not reset: %+v", stats)
	}
	if len(b.Triangles()) != 0 {
		t.Error("acquired builder still has faces")
	}
}
