package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/pigment/internal/identity"
	"github.com/PolarWolf314/pigment/internal/rgba"
)

// SaveTOML saves a struct to a TOML file, creating parent directories.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML loads a TOML file into a struct.
func LoadTOML(filePath string, data interface{}) (toml.MetaData, error) {
	return toml.DecodeFile(filePath, data)
}

// Document is the human-readable TOML form of Settings.
type Document struct {
	Version            int      `toml:"version"`
	ShowSuggestion     bool     `toml:"show_suggestion"`
	StylesheetPath     string   `toml:"stylesheet_path"`
	GradientBrightness int      `toml:"gradient_brightness"`
	GradientDarkness   int      `toml:"gradient_darkness"`
	HashSource         string   `toml:"hash_source"`
	ProjectIndicators  []string `toml:"project_indicators"`
	LightColors        []string `toml:"light_colors"`
	DarkColors         []string `toml:"dark_colors"`
}

// ToDocument converts settings to their TOML form. Colors render as #rrggbbaa.
func ToDocument(s Settings) Document {
	return Document{
		Version:            s.Version,
		ShowSuggestion:     s.ShowSuggestion,
		StylesheetPath:     s.StylesheetPath,
		GradientBrightness: s.GradientBrightness,
		GradientDarkness:   s.GradientDarkness,
		HashSource:         s.HashSource.String(),
		ProjectIndicators:  append([]string{}, s.ProjectIndicators...),
		LightColors:        hexList(s.Palette.Light),
		DarkColors:         hexList(s.Palette.Dark),
	}
}

// Export writes s to a TOML file.
func Export(path string, s Settings) error {
	if err := SaveTOML(path, ToDocument(s)); err != nil {
		return fmt.Errorf("failed to export settings: %w", err)
	}
	return nil
}

// Import reads a TOML settings file. Keys that are absent or invalid fall
// back to their defaults and invalid ones are reported as FieldErrors. Only
// an unreadable or syntactically broken file is an error.
func Import(path string) (Settings, []FieldError, error) {
	var doc Document
	md, err := LoadTOML(path, &doc)
	if err != nil {
		return Settings{}, nil, fmt.Errorf("failed to import settings: %w", err)
	}
	s, errs := FromDocument(doc, md.IsDefined)
	return s, errs, nil
}

// ImportData is Import for TOML already held in memory.
func ImportData(data []byte) (Settings, []FieldError, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Settings{}, nil, fmt.Errorf("failed to import settings: %w", err)
	}
	s, errs := FromDocument(doc, md.IsDefined)
	return s, errs, nil
}

// FromDocument sanitizes a decoded document. defined reports whether a key
// was present; pass nil to treat every key as present.
func FromDocument(doc Document, defined func(key ...string) bool) (Settings, []FieldError) {
	if defined == nil {
		defined = func(...string) bool { return true }
	}

	s := Defaults()
	var errs []FieldError
	fail := func(tag Tag, raw string, err error) {
		errs = append(errs, FieldError{Tag: tag, Raw: raw, Err: err})
	}

	if defined("version") {
		if v, err := Version(fmt.Sprint(doc.Version)); err == nil {
			s.Version = v
		} else {
			fail(TagVersion, fmt.Sprint(doc.Version), err)
		}
	}
	if defined("show_suggestion") {
		s.ShowSuggestion = doc.ShowSuggestion
	}
	if defined("stylesheet_path") {
		if v, err := Text(doc.StylesheetPath); err == nil {
			s.StylesheetPath = v
		} else {
			fail(TagStylesheetPath, doc.StylesheetPath, err)
		}
	}
	if defined("gradient_brightness") {
		if v, err := Percent(doc.GradientBrightness); err == nil {
			s.GradientBrightness = v
		} else {
			fail(TagGradientBrightness, fmt.Sprint(doc.GradientBrightness), err)
		}
	}
	if defined("gradient_darkness") {
		if v, err := Percent(doc.GradientDarkness); err == nil {
			s.GradientDarkness = v
		} else {
			fail(TagGradientDarkness, fmt.Sprint(doc.GradientDarkness), err)
		}
	}
	if defined("hash_source") {
		if v, err := identity.ParseSource(doc.HashSource); err == nil {
			s.HashSource = v
		} else {
			fail(TagHashSource, doc.HashSource, err)
		}
	}
	if defined("project_indicators") {
		if v, err := Indicators(doc.ProjectIndicators); err == nil {
			s.ProjectIndicators = v
		} else {
			fail(TagProjectIndicators, fmt.Sprint(doc.ProjectIndicators), err)
		}
	}
	if defined("light_colors") {
		if v, err := Colors(doc.LightColors); err == nil {
			s.Palette.Light = v
		} else {
			fail(TagLightColors, fmt.Sprint(doc.LightColors), err)
		}
	}
	if defined("dark_colors") {
		if v, err := Colors(doc.DarkColors); err == nil {
			s.Palette.Dark = v
		} else {
			fail(TagDarkColors, fmt.Sprint(doc.DarkColors), err)
		}
	}
	return s, errs
}

func hexList(colors []rgba.Color) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}
