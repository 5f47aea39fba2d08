package rgba

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGreyIntensity is the intensity used for inactive renderings.
const DefaultGreyIntensity = 0.56

// Color is an RGBA color value.
type Color struct {
	R, G, B uint8
	A       float64
}

// Predefined colors.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{255, 255, 255, 1}
)

// New returns a color with the opacity clamped to 0..1.
func New(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: clampUnit(a)}
}

// Parse parses a color in one of the accepted string forms.
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, "rgba(", 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s, "rgb(", 3)
	default:
		return Color{}, fmt.Errorf("%w: %q", perrors.ErrInvalidColor, s)
	}
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 && len(digits) != 8 {
		return Color{}, fmt.Errorf("%w: %q must have 6 or 8 hex digits", perrors.ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", perrors.ErrInvalidColor, s)
	}
	if len(digits) == 6 {
		return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 1}, nil
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: float64(uint8(v)) / 255,
	}, nil
}

func parseFunc(s, prefix string, want int) (Color, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(s, prefix), ")")
	parts := strings.Split(body, ",")
	if len(parts) != want {
		return Color{}, fmt.Errorf("%w: %q expects %d components", perrors.ErrInvalidColor, s, want)
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, fmt.Errorf("%w: %q channel %d out of range", perrors.ErrInvalidColor, s, i)
		}
		channels[i] = uint8(n)
	}

	alpha := 1.0
	if want == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || math.IsNaN(a) || a < 0 || a > 1 {
			return Color{}, fmt.Errorf("%w: %q alpha out of range", perrors.ErrInvalidColor, s)
		}
		alpha = a
	}

	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

// Mix linearly interpolates from c towards to. Integer channels are floored
// and factor is clamped to 0..1, so Mix(to, 0) returns c exactly.
func (c Color) Mix(to Color, factor float64) Color {
	factor = clampUnit(factor)
	return Color{
		R: mixChannel(c.R, to.R, factor),
		G: mixChannel(c.G, to.G, factor),
		B: mixChannel(c.B, to.B, factor),
		A: clampUnit(c.A + (to.A-c.A)*factor),
	}
}

func mixChannel(from, to uint8, factor float64) uint8 {
	f := float64(from)
	return clampByte(math.Floor(f + (float64(to)-f)*factor))
}

// WithAlpha returns c with its opacity replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clampUnit(a)
	return c
}

// Equal reports whether both colors have identical channels.
func (c Color) Equal(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}

// Hex renders the color as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, alphaByte(c.A))
}

// String renders the color as rgba(r,g,b,a).
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'g', -1, 64))
}

// GreyDarken renders a desaturated, darkened hex string for inactive states.
// Higher intensity gives a greyer result. Intensity is clamped to 0..1.
func (c Color) GreyDarken(intensity float64) string {
	i := clampUnit(intensity)
	gray := (float64(c.R) + float64(c.G) + float64(c.B)) / 3
	shade := func(ch uint8) uint8 {
		return clampByte(math.Round(float64(ch)*(1-i) + gray*i))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", shade(c.R), shade(c.G), shade(c.B), alphaByte(c.A))
}

// Lightness returns the CIE L* of the color in 0..1, ignoring opacity.
func (c Color) Lightness() float64 {
	l, _, _ := c.colorful().Lab()
	return l
}

// Foreground returns black or white, whichever reads better on c.
func (c Color) Foreground() Color {
	if c.Lightness() > 0.6 {
		return Black
	}
	return White
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func alphaByte(a float64) uint8 {
	return clampByte(math.Round(clampUnit(a) * 255))
}

func clampByte(v float64) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return uint8(v)
}

func clampUnit(v float64) float64 {
	if v >= 1 {
		return 1
	}
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
