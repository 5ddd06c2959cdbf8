package polytope

import "github.com/akmonengine/hull/geom"

// horizon is a set of directed edges where adding an edge cancels its
// reverse. After all removed faces have contributed their edges, only the
// edges bounding exactly one removed face are left.
//
// Edges live in a slice for deterministic iteration; the map holds each
// edge's position so removal is a swap-with-last.
type horizon struct {
	index map[geom.Edge]int
	edges []geom.Edge
}

func newHorizon() horizon {
	return horizon{
		index: make(map[geom.Edge]int, initialCapacity),
		edges: make([]geom.Edge, 0, initialCapacity),
	}
}

// add inserts e, or removes its reverse if present.
func (h *horizon) add(e geom.Edge) {
	if i, ok := h.index[e.Reverse()]; ok {
		h.remove(i)
		return
	}
	if _, ok := h.index[e]; ok {
		return
	}

	h.index[e] = len(h.edges)
	h.edges = append(h.edges, e)
}

func (h *horizon) remove(i int) {
	last := len(h.edges) - 1
	delete(h.index, h.edges[i])

	if i != last {
		h.edges[i] = h.edges[last]
		h.index[h.edges[i]] = i
	}
	h.edges = h.edges[:last]
}

func (h *horizon) contains(e geom.Edge) bool {
	_, ok := h.index[e]
	return ok
}

func (h *horizon) len() int {
	return len(h.edges)
}

func (h *horizon) clear() {
	clear(h.index)
	h.edges = h.edges[:0]
}
