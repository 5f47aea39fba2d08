// Package rgba provides the color value used throughout pigment.
//
// A Color has three integer channels in 0..255 and a fractional opacity in
// 0..1. Colors are immutable values: Mix and WithAlpha return new colors.
//
// # String Forms
//
// Parse accepts:
//
//	#rrggbb
//	#rrggbbaa
//	rgb(r, g, b)
//	rgba(r, g, b, a)
//
// Hex always renders #rrggbbaa. String renders rgba(r,g,b,a) with the alpha
// formatted losslessly, which is the form stored in settings.
package rgba
