package outline

// grid is the occupancy of compressed cells. Cell (i, j) spans
// xs[i]..xs[i+1] and ys[j]..ys[j+1].
type grid struct {
	nx, ny int
	cells  []bool
}

func newGrid(xs, ys axis, rects []rect) *grid {
	g := &grid{nx: xs.cells(), ny: ys.cells()}
	g.cells = make([]bool, g.nx*g.ny)

	for _, r := range rects {
		i0, i1 := xs.index[r.x0], xs.index[r.x1]
		j0, j1 := ys.index[r.y0], ys.index[r.y1]
		for j := j0; j < j1; j++ {
			for i := i0; i < i1; i++ {
				g.cells[j*g.nx+i] = true
			}
		}
	}
	return g
}

func (g *grid) at(i, j int) bool {
	if i < 0 || j < 0 || i >= g.nx || j >= g.ny {
		return false
	}
	return g.cells[j*g.nx+i]
}

// fillColumns occupies every cell between the first and last occupied
// cell of each column.
func (g *grid) fillColumns() {
	for i := 0; i < g.nx; i++ {
		first, last := -1, -1
		for j := 0; j < g.ny; j++ {
			if g.cells[j*g.nx+i] {
				if first < 0 {
					first = j
				}
				last = j
			}
		}
		for j := first + 1; j < last; j++ {
			g.cells[j*g.nx+i] = true
		}
	}
}

// occupied counts occupied cells.
func (g *grid) occupied() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// components counts 4-connected groups of occupied cells.
func (g *grid) components() int {
	visited := make([]bool, len(g.cells))
	stack := make([]int, 0, len(g.cells))
	count := 0

	for start, occ := range g.cells {
		if !occ || visited[start] {
			continue
		}
		count++
		visited[start] = true
		stack = append(stack[:0], start)

		for len(stack) > 0 {
			idx := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			i, j := idx%g.nx, idx/g.nx

			for _, n := range [4][2]int{{i - 1, j}, {i + 1, j}, {i, j - 1}, {i, j + 1}} {
				if !g.at(n[0], n[1]) {
					continue
				}
				ni := n[1]*g.nx + n[0]
				if !visited[ni] {
					visited[ni] = true
					stack = append(stack, ni)
				}
			}
		}
	}
	return count
}

// euler returns V - E + F of the closed cell complex formed by the
// occupied cells. It is 1 for a single region without holes.
func (g *grid) euler() int {
	vertices := make([]bool, (g.nx+1)*(g.ny+1))
	hEdges := make([]bool, g.nx*(g.ny+1))
	vEdges := make([]bool, (g.nx+1)*g.ny)
	faces := 0

	for j := 0; j < g.ny; j++ {
		for i := 0; i < g.nx; i++ {
			if !g.cells[j*g.nx+i] {
				continue
			}
			faces++
			vertices[j*(g.nx+1)+i] = true
			vertices[j*(g.nx+1)+i+1] = true
			vertices[(j+1)*(g.nx+1)+i] = true
			vertices[(j+1)*(g.nx+1)+i+1] = true
			hEdges[j*g.nx+i] = true
			hEdges[(j+1)*g.nx+i] = true
			vEdges[j*(g.nx+1)+i] = true
			vEdges[j*(g.nx+1)+i+1] = true
		}
	}

	return countTrue(vertices) - countTrue(hEdges) - countTrue(vEdges) + faces
}

func countTrue(b []bool) int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}
