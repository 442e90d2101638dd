package detection

import "testing"

func TestExtractRegions_TwoHalves(t *testing.T) {
	img := newRGB(4, 4, sample(t, Living))
	fillRGB(img, 2, 0, 3, 3, sample(t, Bedroom))

	for _, minPixels := range []int{1, 8} {
		regions := ExtractRegions(ClassifyImage(img), minPixels)
		if len(regions) != 2 {
			t.Fatalf("minPixels=%d: got %d regions, want 2", minPixels, len(regions))
		}

		want := []Region{
			{ID: 1, Type: Living, Bounds: Bounds{0, 0, 1, 3}, AreaPixels: 8},
			{ID: 2, Type: Bedroom, Bounds: Bounds{2, 0, 3, 3}, AreaPixels: 8},
		}
		for i, w := range want {
			if regions[i] != w {
				t.Errorf("minPixels=%d region %d: got %+v, want %+v", minPixels, i, regions[i], w)
			}
		}
	}
}

func TestExtractRegions_Threshold(t *testing.T) {
	img := newRGB(6, 6, sample(t, Living))
	fillRGB(img, 3, 3, 3, 3, sample(t, Kitchen))
	grid := ClassifyImage(img)

	tests := []struct {
		name      string
		minPixels int
		want      int
	}{
		{"keeps single pixel at 1", 1, 2},
		{"drops single pixel at 2", 2, 1},
		{"drops everything above total", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := ExtractRegions(grid, tt.minPixels)
			if len(regions) != tt.want {
				t.Fatalf("got %d regions, want %d", len(regions), tt.want)
			}
			for _, r := range regions {
				if r.Type == Kitchen && tt.minPixels > 1 {
					t.Errorf("1-pixel kitchen patch survived minPixels=%d", tt.minPixels)
				}
			}
		})
	}

	// The living region wraps around the dropped patch: 35 pixels, not 36.
	regions := ExtractRegions(grid, 2)
	if regions[0].AreaPixels != 35 {
		t.Errorf("living area: got %d, want 35", regions[0].AreaPixels)
	}
}

func TestExtractRegions_DisjointSameType(t *testing.T) {
	grid := NewLabelGrid(5, 1)
	grid.Set(0, 0, Bedroom)
	grid.Set(1, 0, Bedroom)
	grid.Set(3, 0, Bedroom)
	grid.Set(4, 0, Bedroom)

	regions := ExtractRegions(grid, 1)
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}
	if regions[0].Bounds.MaxX != 1 || regions[1].Bounds.MinX != 3 {
		t.Errorf("regions were merged: %+v", regions)
	}
}

func TestExtractRegions_DiagonalNotConnected(t *testing.T) {
	grid := NewLabelGrid(2, 2)
	grid.Set(0, 0, Foyer)
	grid.Set(1, 1, Foyer)

	if regions := ExtractRegions(grid, 1); len(regions) != 2 {
		t.Errorf("got %d regions, want 2 for diagonal pixels", len(regions))
	}
}

func TestExtractRegions_AreaNotBBox(t *testing.T) {
	// An L-shaped region: bbox 3x3, area 5.
	grid := NewLabelGrid(3, 3)
	for _, p := range [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}} {
		grid.Set(p[0], p[1], Utility)
	}

	regions := ExtractRegions(grid, 1)
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	r := regions[0]
	if r.AreaPixels != 5 || r.Bounds != (Bounds{0, 0, 2, 2}) {
		t.Errorf("got %+v, want area 5 and bounds (0,0)-(2,2)", r)
	}
}

func TestExtractRegions_Empty(t *testing.T) {
	regions := ExtractRegions(NewLabelGrid(10, 10), 1)
	if regions == nil || len(regions) != 0 {
		t.Errorf("got %v, want empty non-nil slice", regions)
	}
}

func TestExtractRegions_LargeGrid(t *testing.T) {
	// A single region spanning the grid must not overflow the stack.
	const size = 600
	grid := NewLabelGrid(size, size)
	for i := range grid.Labels {
		grid.Labels[i] = Living
	}

	regions := ExtractRegions(grid, DefaultMinRegionPixels)
	if len(regions) != 1 || regions[0].AreaPixels != size*size {
		t.Errorf("got %+v, want one region of %d pixels", regions, size*size)
	}
}
