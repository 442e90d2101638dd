package detection

import "fmt"

// Label is the semantic class of a single pixel.
type Label uint8

const (
	Ignore Label = iota // background, walls, annotation ink
	Living
	Bedroom
	Balcony
	Kitchen
	Utility
	Loggia
	Foyer
	Core
	Other // coloured, but not close to any palette sample
)

var labelNames = [...]string{
	Ignore:  "ignore",
	Living:  "living",
	Bedroom: "bedroom",
	Balcony: "balcony",
	Kitchen: "kitchen",
	Utility: "utility",
	Loggia:  "loggia",
	Foyer:   "foyer",
	Core:    "core",
	Other:   "other",
}

// String returns the lower-case label name used in JSON output.
func (l Label) String() string {
	if int(l) < len(labelNames) {
		return labelNames[l]
	}
	return fmt.Sprintf("label(%d)", uint8(l))
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := ParseLabel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLabel returns the Label with the given name.
func ParseLabel(name string) (Label, error) {
	for i, n := range labelNames {
		if n == name {
			return Label(i), nil
		}
	}
	return Ignore, fmt.Errorf("unknown label: %s", name)
}

// IsRoom reports whether the label marks part of the drawn footprint,
// i.e. it is neither Ignore nor Other.
func (l Label) IsRoom() bool {
	return l != Ignore && l != Other
}
