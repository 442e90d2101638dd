package outline

// vertex is a grid corner in compressed coordinates.
type vertex struct {
	i, j int
}

func (v vertex) less(o vertex) bool {
	if v.i != o.i {
		return v.i < o.i
	}
	return v.j < o.j
}

// edgeKey identifies an undirected edge. newEdgeKey stores the smaller
// endpoint first, so a→b and b→a map to the same key.
type edgeKey struct {
	i1, j1, i2, j2 int
}

func newEdgeKey(a, b vertex) edgeKey {
	if b.less(a) {
		a, b = b, a
	}
	return edgeKey{a.i, a.j, b.i, b.j}
}

type edgeSet map[edgeKey]struct{}

// toggle inserts the edge, or removes it if already present.
func (s edgeSet) toggle(a, b vertex) {
	k := newEdgeKey(a, b)
	if _, ok := s[k]; ok {
		delete(s, k)
		return
	}
	s[k] = struct{}{}
}

func (s edgeSet) has(a, b vertex) bool {
	_, ok := s[newEdgeKey(a, b)]
	return ok
}

// boundaryEdges toggles the four edges of every occupied cell. Edges
// shared by two occupied cells cancel.
func boundaryEdges(g *grid) edgeSet {
	edges := make(edgeSet)
	for j := 0; j < g.ny; j++ {
		for i := 0; i < g.nx; i++ {
			if !g.cells[j*g.nx+i] {
				continue
			}
			tl, tr := vertex{i, j}, vertex{i + 1, j}
			bl, br := vertex{i, j + 1}, vertex{i + 1, j + 1}
			edges.toggle(tl, tr)
			edges.toggle(tr, br)
			edges.toggle(bl, br)
			edges.toggle(tl, bl)
		}
	}
	return edges
}
