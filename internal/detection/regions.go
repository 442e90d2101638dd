package detection

// DefaultMinRegionPixels is the area below which a region is treated as
// noise (anti-aliasing fringes, legend swatches, stray annotation fill).
const DefaultMinRegionPixels = 1500

// Region is a maximal 4-connected group of same-labelled pixels.
type Region struct {
	// ID numbers regions in discovery order (row-major scan), starting at 1.
	ID int `json:"id"`

	// Type is the shared label of every pixel in the region. Never Ignore.
	Type Label `json:"type"`

	// Bounds is the inclusive pixel bounding box.
	Bounds Bounds `json:"bounds"`

	// AreaPixels is the number of pixels in the region, not the bbox area.
	AreaPixels int `json:"areaPixels"`
}

// ExtractRegions partitions the grid into 4-connected same-label regions
// and returns those with at least minPixels pixels, in row-major discovery
// order.
//
// Ignore pixels never start or join a region. Regions below the threshold
// are dropped but their pixels stay visited, so no pixel is ever counted
// twice and two disjoint blobs of the same type always stay separate.
//
// # Algorithm
//
// Iterative flood fill with an explicit stack. The visited array and the
// stack are both preallocated to width×height: a pixel is marked visited
// when pushed, so the stack can never hold more than every pixel once.
func ExtractRegions(grid *LabelGrid, minPixels int) []Region {
	width, height := grid.Width, grid.Height
	total := width * height

	visited := make([]bool, total)
	stack := make([]int32, 0, total)
	regions := make([]Region, 0)

	for start := 0; start < total; start++ {
		if visited[start] || grid.Labels[start] == Ignore {
			continue
		}

		label := grid.Labels[start]
		sx, sy := start%width, start/width
		bounds := Bounds{MinX: sx, MinY: sy, MaxX: sx, MaxY: sy}
		area := 0

		visited[start] = true
		stack = append(stack[:0], int32(start))

		for len(stack) > 0 {
			idx := int(stack[len(stack)-1])
			stack = stack[:len(stack)-1]

			x, y := idx%width, idx/width
			area++
			bounds.extend(x, y)

			// 4-connected neighbours
			if x > 0 {
				stack = pushIfSame(grid.Labels, visited, stack, idx-1, label)
			}
			if x < width-1 {
				stack = pushIfSame(grid.Labels, visited, stack, idx+1, label)
			}
			if y > 0 {
				stack = pushIfSame(grid.Labels, visited, stack, idx-width, label)
			}
			if y < height-1 {
				stack = pushIfSame(grid.Labels, visited, stack, idx+width, label)
			}
		}

		if area < minPixels {
			continue
		}

		regions = append(regions, Region{
			ID:         len(regions) + 1,
			Type:       label,
			Bounds:     bounds,
			AreaPixels: area,
		})
	}

	return regions
}

// pushIfSame marks and pushes idx when it is unvisited and carries label.
func pushIfSame(labels []Label, visited []bool, stack []int32, idx int, label Label) []int32 {
	if visited[idx] || labels[idx] != label {
		return stack
	}
	visited[idx] = true
	return append(stack, int32(idx))
}
