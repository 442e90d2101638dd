package outline

// direction is a unit step in compressed coordinates, y pointing down.
type direction struct {
	di, dj int
}

var north = direction{0, -1}

// right turns clockwise on screen.
func (d direction) right() direction   { return direction{-d.dj, d.di} }
func (d direction) left() direction    { return direction{d.dj, -d.di} }
func (d direction) reverse() direction { return direction{-d.di, -d.dj} }

// walk traces the boundary edges from the smallest vertex, preferring
// right, straight, left and reverse in that order. closed is false when
// the walk gets stuck before returning to the start.
//
// The start vertex is the top of the leftmost column, so its edges lead
// east and south. Entering it heading north makes east the right turn and
// the trace runs clockwise on screen.
func walk(edges edgeSet) (path []vertex, closed bool) {
	if len(edges) == 0 {
		return nil, false
	}

	start := vertex{}
	first := true
	for k := range edges {
		for _, v := range [2]vertex{{k.i1, k.j1}, {k.i2, k.j2}} {
			if first || v.less(start) {
				start = v
				first = false
			}
		}
	}

	used := make(map[edgeKey]bool, len(edges))
	path = []vertex{start}
	cur, heading := start, north

	for steps := 0; steps < len(edges); steps++ {
		next, dir, ok := step(edges, used, cur, heading)
		if !ok {
			return path, false
		}
		used[newEdgeKey(cur, next)] = true
		if next == start {
			return path, true
		}
		path = append(path, next)
		cur, heading = next, dir
	}
	return path, false
}

func step(edges edgeSet, used map[edgeKey]bool, cur vertex, heading direction) (vertex, direction, bool) {
	for _, d := range [4]direction{heading.right(), heading, heading.left(), heading.reverse()} {
		next := vertex{cur.i + d.di, cur.j + d.dj}
		if edges.has(cur, next) && !used[newEdgeKey(cur, next)] {
			return next, d, true
		}
	}
	return vertex{}, direction{}, false
}

// mergeCollinear drops vertices that lie on a straight run between their
// neighbours. The path is treated as closed.
func mergeCollinear(path []vertex) []vertex {
	n := len(path)
	if n < 3 {
		return path
	}
	out := make([]vertex, 0, n)
	for k := 0; k < n; k++ {
		prev, cur, next := path[(k+n-1)%n], path[k], path[(k+1)%n]
		cross := (cur.i-prev.i)*(next.j-cur.j) - (cur.j-prev.j)*(next.i-cur.i)
		if cross == 0 {
			continue
		}
		out = append(out, cur)
	}
	return out
}
