package configs

import (
	"slices"

	"github.com/PolarWolf314/pigment/internal/identity"
	"github.com/PolarWolf314/pigment/internal/palette"
	"github.com/PolarWolf314/pigment/internal/rgba"
)

// CurrentVersion is the format version written by this build.
const CurrentVersion = 2

// Defaults for scalar fields.
const (
	DefaultShowSuggestion     = true
	DefaultGradientBrightness = 62
	DefaultGradientDarkness   = 20
	DefaultHashSource         = identity.ByProjectName
)

// DefaultProjectIndicators are the files and directories that mark a workspace root.
var DefaultProjectIndicators = []string{
	".git",
	".vscode",
	"package.json",
	"go.mod",
	"Cargo.toml",
	"pyproject.toml",
}

// Settings holds every user-tunable setting.
type Settings struct {
	Version            int
	ShowSuggestion     bool
	StylesheetPath     string
	GradientBrightness int
	GradientDarkness   int
	HashSource         identity.Source
	ProjectIndicators  []string
	Palette            palette.Palette
}

// Defaults returns a fresh settings value with every field at its default.
func Defaults() Settings {
	return Settings{
		Version:            CurrentVersion,
		ShowSuggestion:     DefaultShowSuggestion,
		StylesheetPath:     "",
		GradientBrightness: DefaultGradientBrightness,
		GradientDarkness:   DefaultGradientDarkness,
		HashSource:         DefaultHashSource,
		ProjectIndicators:  slices.Clone(DefaultProjectIndicators),
		Palette:            palette.Default(),
	}
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	s.ProjectIndicators = slices.Clone(s.ProjectIndicators)
	s.Palette = palette.Palette{
		Light: slices.Clone(s.Palette.Light),
		Dark:  slices.Clone(s.Palette.Dark),
	}
	return s
}

// Equal reports whether both settings hold the same values.
func (s Settings) Equal(o Settings) bool {
	return s.Version == o.Version &&
		s.ShowSuggestion == o.ShowSuggestion &&
		s.StylesheetPath == o.StylesheetPath &&
		s.GradientBrightness == o.GradientBrightness &&
		s.GradientDarkness == o.GradientDarkness &&
		s.HashSource == o.HashSource &&
		slices.Equal(s.ProjectIndicators, o.ProjectIndicators) &&
		s.Palette.Equal(o.Palette)
}

func (s Settings) WithShowSuggestion(show bool) Settings {
	next := s.Clone()
	next.ShowSuggestion = show
	return next
}

func (s Settings) WithStylesheetPath(path string) (Settings, error) {
	path, err := Text(path)
	if err != nil {
		return s, err
	}
	next := s.Clone()
	next.StylesheetPath = path
	return next, nil
}

func (s Settings) WithGradientBrightness(pct int) (Settings, error) {
	pct, err := Percent(pct)
	if err != nil {
		return s, err
	}
	next := s.Clone()
	next.GradientBrightness = pct
	return next, nil
}

func (s Settings) WithGradientDarkness(pct int) (Settings, error) {
	pct, err := Percent(pct)
	if err != nil {
		return s, err
	}
	next := s.Clone()
	next.GradientDarkness = pct
	return next, nil
}

func (s Settings) WithHashSource(source identity.Source) (Settings, error) {
	source, err := ValidHashSource(source)
	if err != nil {
		return s, err
	}
	next := s.Clone()
	next.HashSource = source
	return next, nil
}

func (s Settings) WithProjectIndicators(names []string) (Settings, error) {
	names, err := Indicators(names)
	if err != nil {
		return s, err
	}
	next := s.Clone()
	next.ProjectIndicators = names
	return next, nil
}

// WithColors replaces the stop list for one theme.
func (s Settings) WithColors(theme palette.Theme, colors []rgba.Color) (Settings, error) {
	colors, err := ColorValues(colors)
	if err != nil {
		return s, err
	}
	next := s.Clone()
	if theme == palette.Dark {
		next.Palette.Dark = colors
	} else {
		next.Palette.Light = colors
	}
	return next, nil
}

// WithVersion stamps the format version.
func (s Settings) WithVersion(v int) Settings {
	next := s.Clone()
	next.Version = v
	return next
}
