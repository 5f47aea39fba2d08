package ui

import (
	"github.com/fatih/color"

	"github.com/PolarWolf314/pigment/internal/rgba"
)

// Swatch renders label on a truecolor background of c, using the
// foreground that contrasts best. Without color support it renders
// "[label]" followed by the hex value.
func Swatch(c rgba.Color, label string) string {
	if noColor() {
		return "[" + label + "] " + c.Hex()
	}
	fg := c.Foreground()
	style := color.RGB(int(fg.R), int(fg.G), int(fg.B)).AddBgRGB(int(c.R), int(c.G), int(c.B))
	return style.Sprint(" " + label + " ")
}

// Tinted renders text in the color c.
func Tinted(c rgba.Color, text string) string {
	if noColor() {
		return text
	}
	return color.RGB(int(c.R), int(c.G), int(c.B)).Sprint(text)
}
