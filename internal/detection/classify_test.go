package detection

import (
	"encoding/json"
	"testing"
)

func TestClassify_PaletteSamples(t *testing.T) {
	for _, p := range DefaultPalettes {
		for _, s := range p.Samples {
			r, g, b := SampleRGB(s)
			t.Run(s.Hex(), func(t *testing.T) {
				if got := Classify(r, g, b); got != p.Label {
					t.Errorf("Classify(%d,%d,%d) = %s, want %s", r, g, b, got, p.Label)
				}
			})
		}
	}
}

func TestClassify_Ignore(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{"white", 255, 255, 255},
		{"paper", 250, 248, 246},
		{"black", 0, 0, 0},
		{"very dark", 20, 30, 20},
		{"near black", 44, 44, 44},
		{"dark blue ink", 10, 20, 44},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.r, tt.g, tt.b); got != Ignore {
				t.Errorf("Classify(%d,%d,%d) = %s, want ignore", tt.r, tt.g, tt.b, got)
			}
		})
	}
}

func TestClassify_Other(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
	}{
		{"pure red", 255, 0, 0},
		{"pure blue", 0, 0, 255},
		{"dark green", 0, 90, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.r, tt.g, tt.b); got != Other {
				t.Errorf("Classify(%d,%d,%d) = %s, want other", tt.r, tt.g, tt.b, got)
			}
		})
	}
}

func TestClassify_NearSample(t *testing.T) {
	// A few units off a living sample still classifies as living.
	c := sample(t, Living)
	if got := Classify(c[0]-6, c[1]+4, c[2]-3); got != Living {
		t.Errorf("Classify near living = %s, want living", got)
	}
}

func TestClassifyWith_CustomPalette(t *testing.T) {
	palettes := []Palette{{Label: Kitchen, Samples: DefaultPalettes[0].Samples}}
	c := sample(t, Living)
	if got := ClassifyWith(palettes, c[0], c[1], c[2]); got != Kitchen {
		t.Errorf("ClassifyWith = %s, want kitchen", got)
	}
	if got := ClassifyWith(nil, c[0], c[1], c[2]); got != Other {
		t.Errorf("ClassifyWith(nil) = %s, want other", got)
	}
}

func TestClassifyImage(t *testing.T) {
	img := newRGB(4, 2, [3]uint8{255, 255, 255})
	fillRGB(img, 1, 0, 2, 1, sample(t, Bedroom))

	grid := ClassifyImage(img)
	if grid.Width != 4 || grid.Height != 2 {
		t.Fatalf("grid size: got %dx%d, want 4x2", grid.Width, grid.Height)
	}

	want := []Label{
		Ignore, Bedroom, Bedroom, Ignore,
		Ignore, Bedroom, Bedroom, Ignore,
	}
	for i, l := range want {
		if grid.Labels[i] != l {
			t.Errorf("label[%d]: got %s, want %s", i, grid.Labels[i], l)
		}
	}
}

func TestLabelGrid_OutOfRange(t *testing.T) {
	grid := NewLabelGrid(2, 2)
	grid.Set(5, 5, Living)
	grid.Set(1, 1, Core)

	if got := grid.At(-1, 0); got != Ignore {
		t.Errorf("At(-1,0) = %s, want ignore", got)
	}
	if got := grid.At(1, 1); got != Core {
		t.Errorf("At(1,1) = %s, want core", got)
	}
}

func TestLabel_JSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Type Label `json:"type"`
	}{Loggia})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"type":"loggia"}` {
		t.Errorf("got %s", data)
	}

	var decoded struct {
		Type Label `json:"type"`
	}
	if err := json.Unmarshal([]byte(`{"type":"foyer"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Type != Foyer {
		t.Errorf("decoded %s, want foyer", decoded.Type)
	}

	if _, err := ParseLabel("garage"); err == nil {
		t.Error("ParseLabel should reject unknown names")
	}
}

func TestLabel_IsRoom(t *testing.T) {
	tests := []struct {
		label Label
		want  bool
	}{
		{Ignore, false},
		{Other, false},
		{Living, true},
		{Core, true},
	}

	for _, tt := range tests {
		if got := tt.label.IsRoom(); got != tt.want {
			t.Errorf("%s.IsRoom() = %v, want %v", tt.label, got, tt.want)
		}
	}
}
