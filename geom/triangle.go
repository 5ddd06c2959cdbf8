package geom

// Triangle is a hull face given as three indices into the point slice.
// Its winding is outward: (p[1]-p[0]) × (p[2]-p[0]) points away from the
// solid.
type Triangle [3]int

// Edge is a directed pair of point indices.
type Edge struct {
	From, To int
}

// Reverse returns the edge with its endpoints swapped.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From}
}

// Edges returns the three directed edges in winding order.
func (t Triangle) Edges() [3]Edge {
	return [3]Edge{
		{t[0], t[1]},
		{t[1], t[2]},
		{t[2], t[0]},
	}
}

// Reversed returns the triangle with the opposite winding.
func (t Triangle) Reversed() Triangle {
	return Triangle{t[2], t[1], t[0]}
}

// Contains reports whether index is one of the triangle's vertices.
func (t Triangle) Contains(index int) bool {
	return t[0] == index || t[1] == index || t[2] == index
}

// Canonical rotates the triangle so that its smallest index comes first,
// keeping the winding. Two triangles describe the same oriented face iff
// their canonical forms are equal.
func (t Triangle) Canonical() Triangle {
	switch {
	case t[1] < t[0] && t[1] < t[2]:
		return Triangle{t[1], t[2], t[0]}
	case t[2] < t[0] && t[2] < t[1]:
		return Triangle{t[2], t[0], t[1]}
	}
	return t
}
