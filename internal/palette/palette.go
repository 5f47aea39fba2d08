// Package palette holds the theme-partitioned gradient stops used to derive accent colors.
package palette

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/pigment/internal/rgba"
)

// Theme selects which half of a Palette is used.
type Theme int

const (
	Light Theme = iota
	Dark
)

// ParseTheme converts "light" or "dark" to a Theme.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q (expected light or dark)", s)
	}
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Palette is a pair of gradient stop lists. It is replaced wholesale, never
// edited in place.
type Palette struct {
	Light []rgba.Color
	Dark  []rgba.Color
}

// Default light and dark gradient stops.
var (
	DefaultLight = []rgba.Color{
		rgba.MustParse("#e57373"),
		rgba.MustParse("#ffb74d"),
		rgba.MustParse("#dce775"),
		rgba.MustParse("#81c784"),
		rgba.MustParse("#4dd0e1"),
		rgba.MustParse("#64b5f6"),
		rgba.MustParse("#9575cd"),
		rgba.MustParse("#f06292"),
	}
	DefaultDark = []rgba.Color{
		rgba.MustParse("#b71c1c"),
		rgba.MustParse("#e65100"),
		rgba.MustParse("#827717"),
		rgba.MustParse("#1b5e20"),
		rgba.MustParse("#006064"),
		rgba.MustParse("#0d47a1"),
		rgba.MustParse("#4a148c"),
		rgba.MustParse("#880e4f"),
	}
)

// Default returns a fresh copy of the built-in palette.
func Default() Palette {
	return Palette{
		Light: append([]rgba.Color(nil), DefaultLight...),
		Dark:  append([]rgba.Color(nil), DefaultDark...),
	}
}

// Raw returns the stop list for theme as stored, without wrap-closing.
func (p Palette) Raw(theme Theme) []rgba.Color {
	if theme == Dark {
		return p.Dark
	}
	return p.Light
}

// Stops returns the wrap-closed stop list for theme. An empty list falls
// back to the default stops for that theme, so the result is never empty.
func (p Palette) Stops(theme Theme) []rgba.Color {
	raw := p.Raw(theme)
	if len(raw) == 0 {
		raw = Default().Raw(theme)
	}
	return Close(raw)
}

// Close returns a copy of stops with the first stop appended when the first
// and last differ, making the gradient cyclic.
func Close(stops []rgba.Color) []rgba.Color {
	closed := make([]rgba.Color, len(stops), len(stops)+1)
	copy(closed, stops)
	if len(closed) > 0 && !closed[0].Equal(closed[len(closed)-1]) {
		closed = append(closed, closed[0])
	}
	return closed
}

// Equal reports whether both palettes have identical stops.
func (p Palette) Equal(o Palette) bool {
	return equalStops(p.Light, o.Light) && equalStops(p.Dark, o.Dark)
}

func equalStops(a, b []rgba.Color) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
