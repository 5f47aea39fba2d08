// Package ui provides semantic text formatting for CLI output.
//
// Formatters render colorized text when the terminal supports it. When
// NO_COLOR is set or the terminal lacks color support, text decorations
// stand in:
//
//	ui.Code.Sprint("pigment config show")   // `pigment config show`
//	ui.Highlight.Sprint("hash-source")      // 'hash-source'
//	ui.Muted.Sprint("default")              // (default)
//
// Swatch and Tinted render derived accent colors in 24-bit color.
package ui
