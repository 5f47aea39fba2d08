package configs

import (
	"fmt"
	"strconv"
	"strings"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/identity"
	"github.com/PolarWolf314/pigment/internal/rgba"
)

// Partial is the result of parsing tagged text. A nil field was absent or
// failed validation.
type Partial struct {
	Version            *int
	ShowSuggestion     *bool
	StylesheetPath     *string
	GradientBrightness *int
	GradientDarkness   *int
	HashSource         *identity.Source
	ProjectIndicators  *[]string
	LightColors        *[]rgba.Color
	DarkColors         *[]rgba.Color

	// Errors lists entries that were present but unusable.
	Errors []FieldError

	// Unknown lists tags this build does not recognise.
	Unknown []Tag
}

type fieldCodec struct {
	encode func(Settings) (string, error)
	decode func(*Partial, string) error
}

var codecs = map[Tag]fieldCodec{
	TagVersion: {
		encode: func(s Settings) (string, error) { return strconv.Itoa(s.Version), nil },
		decode: func(p *Partial, raw string) error {
			v, err := Version(raw)
			return assign(&p.Version, v, err)
		},
	},
	TagShowSuggestion: {
		encode: func(s Settings) (string, error) { return encodeFlag(s.ShowSuggestion), nil },
		decode: func(p *Partial, raw string) error {
			v, err := Flag(raw)
			return assign(&p.ShowSuggestion, v, err)
		},
	},
	TagStylesheetPath: {
		encode: func(s Settings) (string, error) { return Text(s.StylesheetPath) },
		decode: func(p *Partial, raw string) error {
			v, err := Text(raw)
			return assign(&p.StylesheetPath, v, err)
		},
	},
	TagGradientBrightness: {
		encode: func(s Settings) (string, error) { return strconv.Itoa(s.GradientBrightness), nil },
		decode: func(p *Partial, raw string) error {
			v, err := ParsePercent(raw)
			return assign(&p.GradientBrightness, v, err)
		},
	},
	TagGradientDarkness: {
		encode: func(s Settings) (string, error) { return strconv.Itoa(s.GradientDarkness), nil },
		decode: func(p *Partial, raw string) error {
			v, err := ParsePercent(raw)
			return assign(&p.GradientDarkness, v, err)
		},
	},
	TagHashSource: {
		encode: func(s Settings) (string, error) {
			tag, ok := s.HashSource.Tag()
			if !ok {
				return "", fmt.Errorf("%w: %q", perrors.ErrInvalidHashSource, s.HashSource)
			}
			return strconv.Itoa(tag), nil
		},
		decode: func(p *Partial, raw string) error {
			n, err := strconv.Atoi(raw)
			if err != nil {
				p.HashSource = nil
				return fmt.Errorf("%w: got %q", perrors.ErrInvalidHashSource, raw)
			}
			v, err := HashSource(n)
			return assign(&p.HashSource, v, err)
		},
	},
	TagProjectIndicators: {
		encode: func(s Settings) (string, error) {
			names, err := Indicators(s.ProjectIndicators)
			if err != nil {
				return "", err
			}
			return strings.Join(names, string(ListSeparator)), nil
		},
		decode: func(p *Partial, raw string) error {
			v, err := Indicators(splitList(raw))
			return assign(&p.ProjectIndicators, v, err)
		},
	},
	TagLightColors: {
		encode: func(s Settings) (string, error) { return encodeColors(s.Palette.Light), nil },
		decode: func(p *Partial, raw string) error {
			v, err := Colors(splitList(raw))
			return assign(&p.LightColors, v, err)
		},
	},
	TagDarkColors: {
		encode: func(s Settings) (string, error) { return encodeColors(s.Palette.Dark), nil },
		decode: func(p *Partial, raw string) error {
			v, err := Colors(splitList(raw))
			return assign(&p.DarkColors, v, err)
		},
	},
}

// assign stores v in dst, or clears dst when err is set. The last occurrence
// of a tag decides the field even when it is invalid.
func assign[T any](dst **T, v T, err error) error {
	if err != nil {
		*dst = nil
		return err
	}
	*dst = &v
	return nil
}

// Serialize renders s as tagged text. It fails only if a value contains a
// reserved separator or the hash source is undefined.
func Serialize(s Settings) (string, error) {
	var b strings.Builder
	for i, tag := range Tags() {
		value, err := codecs[tag].encode(s)
		if err != nil {
			return "", fmt.Errorf("encoding %s: %w", tag.Name(), err)
		}
		if i > 0 {
			b.WriteRune(EntrySeparator)
		}
		b.WriteString(strconv.Itoa(int(tag)))
		b.WriteByte(':')
		b.WriteString(value)
	}
	return b.String(), nil
}

// Parse decodes tagged text. It never fails as a whole: every problem is
// confined to the entry that caused it.
func Parse(raw string) Partial {
	var p Partial
	if raw == "" {
		return p
	}

	for _, entry := range strings.Split(raw, string(EntrySeparator)) {
		if entry == "" {
			continue
		}
		left, value, ok := strings.Cut(entry, ":")
		if !ok {
			p.Errors = append(p.Errors, FieldError{Tag: TagMalformed, Raw: entry, Err: perrors.ErrMalformedEntry})
			continue
		}
		n, err := strconv.Atoi(left)
		if err != nil {
			p.Errors = append(p.Errors, FieldError{Tag: TagMalformed, Raw: entry, Err: perrors.ErrMalformedEntry})
			continue
		}

		tag := Tag(n)
		codec, known := codecs[tag]
		if !known {
			p.Unknown = append(p.Unknown, tag)
			continue
		}
		if err := codec.decode(&p, value); err != nil {
			p.Errors = append(p.Errors, FieldError{Tag: tag, Raw: value, Err: err})
		}
	}
	return p
}

// Resolve fills every unset field from Defaults and returns the tags that
// were defaulted.
func (p Partial) Resolve() (Settings, []Tag) {
	s := Defaults()
	var defaulted []Tag
	mark := func(tag Tag, set bool) bool {
		if !set {
			defaulted = append(defaulted, tag)
		}
		return set
	}

	if mark(TagVersion, p.Version != nil) {
		s.Version = *p.Version
	}
	if mark(TagShowSuggestion, p.ShowSuggestion != nil) {
		s.ShowSuggestion = *p.ShowSuggestion
	}
	if mark(TagStylesheetPath, p.StylesheetPath != nil) {
		s.StylesheetPath = *p.StylesheetPath
	}
	if mark(TagGradientBrightness, p.GradientBrightness != nil) {
		s.GradientBrightness = *p.GradientBrightness
	}
	if mark(TagGradientDarkness, p.GradientDarkness != nil) {
		s.GradientDarkness = *p.GradientDarkness
	}
	if mark(TagHashSource, p.HashSource != nil) {
		s.HashSource = *p.HashSource
	}
	if mark(TagProjectIndicators, p.ProjectIndicators != nil) {
		s.ProjectIndicators = *p.ProjectIndicators
	}
	if mark(TagLightColors, p.LightColors != nil) {
		s.Palette.Light = *p.LightColors
	}
	if mark(TagDarkColors, p.DarkColors != nil) {
		s.Palette.Dark = *p.DarkColors
	}
	return s, defaulted
}

// Decode parses raw and resolves defaults in one step.
func Decode(raw string) (Settings, Partial) {
	p := Parse(raw)
	s, _ := p.Resolve()
	return s, p
}

func encodeFlag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func encodeColors(colors []rgba.Color) string {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = c.String()
	}
	return strings.Join(parts, string(ListSeparator))
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, string(ListSeparator))
}
