package outline

import "sort"

// axis is one compressed coordinate axis: sorted distinct cut lines and
// the reverse lookup from value to position.
type axis struct {
	values []float64
	index  map[float64]int
}

func newAxis(values []float64) axis {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	a := axis{
		values: sorted[:0],
		index:  make(map[float64]int, len(sorted)),
	}
	for _, v := range sorted {
		if _, seen := a.index[v]; seen {
			continue
		}
		a.index[v] = len(a.values)
		a.values = append(a.values, v)
	}
	return a
}

// cells is the number of intervals between cut lines.
func (a axis) cells() int {
	return max(len(a.values)-1, 0)
}

// compress builds the x and y axes from the plan bounds and every rect.
func compress(width, height float64, rects []rect) (xs, ys axis) {
	xv := make([]float64, 0, 2*len(rects)+2)
	yv := make([]float64, 0, 2*len(rects)+2)
	xv = append(xv, 0, width)
	yv = append(yv, 0, height)
	for _, r := range rects {
		xv = append(xv, r.x0, r.x1)
		yv = append(yv, r.y0, r.y1)
	}
	return newAxis(xv), newAxis(yv)
}
