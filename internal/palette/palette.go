package palette

import (
	"fmt"
	"regexp"
)

// Size is the number of colors in every palette.
const Size = 5

// Palette is an ordered set of #RRGGBB hex colors.
type Palette [Size]string

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHex reports whether s is a #RRGGBB color.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// FromSlice converts colors into a Palette, checking the count and every entry.
func FromSlice(colors []string) (Palette, error) {
	var p Palette
	if len(colors) != Size {
		return p, fmt.Errorf("palette: expected %d colors, got %d", Size, len(colors))
	}
	for i, c := range colors {
		if !IsHex(c) {
			return p, fmt.Errorf("palette: color %d is not a hex code: %q", i+1, c)
		}
		p[i] = c
	}
	return p, nil
}

// Valid reports whether every entry of p is a hex color.
func (p Palette) Valid() bool {
	for _, c := range p {
		if !IsHex(c) {
			return false
		}
	}
	return true
}

// Slice returns the colors as a new slice.
func (p Palette) Slice() []string {
	out := make([]string, Size)
	copy(out, p[:])
	return out
}

// Default returns the fixed palette shown before anything is generated.
func Default() Palette {
	return Palette{
		"#8FBC8F", // dark sea green
		"#98D8C8", // mint
		"#F7DC6F", // light yellow
		"#F8C471", // peach
		"#BB8FCE", // light purple
	}
}
