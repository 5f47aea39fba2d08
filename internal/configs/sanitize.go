package configs

import (
	"fmt"
	"strconv"
	"strings"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/identity"
	"github.com/PolarWolf314/pigment/internal/rgba"
)

// Percent returns n if it lies in 0..100. Out-of-range values are rejected,
// never clamped.
func Percent(n int) (int, error) {
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("%w: got %d", perrors.ErrInvalidPercent, n)
	}
	return n, nil
}

// ParsePercent parses an integer percentage.
func ParsePercent(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: got %q", perrors.ErrInvalidPercent, s)
	}
	return Percent(n)
}

// HashSource returns the source persisted as tag.
func HashSource(tag int) (identity.Source, error) {
	source, ok := identity.SourceForTag(tag)
	if !ok {
		return "", fmt.Errorf("%w: tag %d", perrors.ErrInvalidHashSource, tag)
	}
	return source, nil
}

// ValidHashSource checks that s is a defined source.
func ValidHashSource(s identity.Source) (identity.Source, error) {
	if _, ok := s.Tag(); !ok {
		return "", fmt.Errorf("%w: %q", perrors.ErrInvalidHashSource, s)
	}
	return s, nil
}

// Colors parses every entry of list. A single bad entry invalidates the
// whole list, and an empty list is invalid.
func Colors(list []string) ([]rgba.Color, error) {
	if len(list) == 0 {
		return nil, perrors.ErrEmptyColorList
	}
	colors := make([]rgba.Color, 0, len(list))
	for i, s := range list {
		c, err := rgba.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// ColorValues validates an already parsed color list.
func ColorValues(colors []rgba.Color) ([]rgba.Color, error) {
	if len(colors) == 0 {
		return nil, perrors.ErrEmptyColorList
	}
	return append([]rgba.Color(nil), colors...), nil
}

// Flag parses the "1"/"0" boolean encoding.
func Flag(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: got %q", perrors.ErrInvalidFlag, s)
	}
}

// Text rejects strings containing a reserved separator.
func Text(s string) (string, error) {
	if strings.ContainsAny(s, reservedChars) {
		return "", fmt.Errorf("%w: %q", perrors.ErrReservedCharacter, s)
	}
	return s, nil
}

// Indicators trims each filename and drops empty entries. A name containing
// a reserved separator invalidates the list.
func Indicators(list []string) ([]string, error) {
	names := make([]string, 0, len(list))
	for _, name := range list {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := Text(name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// Version parses a format version, which must be at least 1.
func Version(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: got %q", perrors.ErrInvalidVersion, s)
	}
	return v, nil
}
