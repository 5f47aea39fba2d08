package workflows

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PolarWolf314/pigment/internal/configs"
	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/identity"
	"github.com/PolarWolf314/pigment/internal/palette"
	"github.com/PolarWolf314/pigment/internal/rgba"
	"github.com/PolarWolf314/pigment/internal/store"
	"github.com/PolarWolf314/pigment/internal/utils"
)

// SettingValue is one rendered setting.
type SettingValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`

	// Default is true when the value equals the built-in default.
	Default bool `json:"default"`
}

// ConfigView contains every setting in tag order.
type ConfigView struct {
	Settings []SettingValue `json:"settings"`
}

// ShowConfig renders the current settings.
func ShowConfig(ctx context.Context, st *store.Store) (*ConfigView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	current := st.Settings()
	defaults := configs.Defaults()

	view := &ConfigView{}
	for _, tag := range configs.Tags() {
		value := renderField(current, tag)
		view.Settings = append(view.Settings, SettingValue{
			Name:    tag.Name(),
			Value:   value,
			Default: value == renderField(defaults, tag),
		})
	}
	return view, nil
}

// SetResult contains the outcome of a set operation.
type SetResult struct {
	Name string

	// Value is the new value as ShowConfig renders it.
	Value string
}

// SetConfig parses value for the named setting and saves it.
//
// List values are comma-separated for project-indicators and
// whitespace-separated for color lists, since rgb() colors contain commas.
//
// Returns ErrUnknownSetting for names that are not settable, the field's
// validation error for bad values, and an error wrapping ErrStorageWrite
// when the new value could not be saved. In the last case the new value is
// still in effect for this process.
func SetConfig(ctx context.Context, st *store.Store, name, value string) (*SetResult, error) {
	tag, ok := configs.TagForName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", perrors.ErrUnknownSetting, name)
	}

	var err error
	switch tag {
	case configs.TagShowSuggestion:
		show, parseErr := strconv.ParseBool(strings.TrimSpace(value))
		if parseErr != nil {
			return nil, fmt.Errorf("%w: got %q", perrors.ErrInvalidFlag, value)
		}
		err = st.SetShowSuggestion(ctx, show)

	case configs.TagStylesheetPath:
		path := strings.TrimSpace(value)
		if path != "" {
			if !utils.PathExists(path) {
				return nil, fmt.Errorf("%w: %s", perrors.ErrPathNotFound, path)
			}
			if path, err = filepath.Abs(path); err != nil {
				return nil, fmt.Errorf("resolving stylesheet path: %w", err)
			}
		}
		err = st.SetStylesheetPath(ctx, path)

	case configs.TagGradientBrightness, configs.TagGradientDarkness:
		pct, parseErr := configs.ParsePercent(value)
		if parseErr != nil {
			return nil, parseErr
		}
		if tag == configs.TagGradientBrightness {
			err = st.SetGradientBrightness(ctx, pct)
		} else {
			err = st.SetGradientDarkness(ctx, pct)
		}

	case configs.TagHashSource:
		source, parseErr := identity.ParseSource(strings.TrimSpace(value))
		if parseErr != nil {
			return nil, parseErr
		}
		err = st.SetHashSource(ctx, source)

	case configs.TagProjectIndicators:
		err = st.SetProjectIndicators(ctx, strings.Split(value, ","))

	case configs.TagLightColors, configs.TagDarkColors:
		colors, parseErr := configs.Colors(strings.Fields(value))
		if parseErr != nil {
			return nil, parseErr
		}
		theme := palette.Light
		if tag == configs.TagDarkColors {
			theme = palette.Dark
		}
		err = st.SetColors(ctx, theme, colors)

	default:
		return nil, fmt.Errorf("%w: %q is read-only", perrors.ErrUnknownSetting, name)
	}

	return &SetResult{Name: name, Value: renderField(st.Settings(), tag)}, err
}

// ResetConfig restores every setting to its default.
func ResetConfig(ctx context.Context, st *store.Store) error {
	return st.Reset(ctx)
}

// ExportConfig writes the current settings to a TOML file.
func ExportConfig(ctx context.Context, st *store.Store, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return configs.Export(path, st.Settings())
}

// ImportOptions configures the import workflow.
type ImportOptions struct {
	// Path is the TOML file to read. Ignored when Data is set.
	Path string

	// Data holds TOML read from elsewhere, such as stdin.
	Data []byte
}

// ImportResult contains the outcome of an import.
type ImportResult struct {
	// FieldErrors lists keys that were invalid and took their defaults.
	FieldErrors []configs.FieldError
}

// ImportConfig replaces every setting with the imported ones. Missing or
// invalid keys take their defaults. Only an unreadable or malformed file is
// an error, or a failed save.
func ImportConfig(ctx context.Context, st *store.Store, opts ImportOptions) (*ImportResult, error) {
	var (
		next configs.Settings
		errs []configs.FieldError
		err  error
	)
	if opts.Data != nil {
		next, errs, err = configs.ImportData(opts.Data)
	} else {
		next, errs, err = configs.Import(opts.Path)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{FieldErrors: errs}
	if err := st.Replace(ctx, next); err != nil {
		return result, err
	}
	return result, nil
}

func renderField(s configs.Settings, tag configs.Tag) string {
	switch tag {
	case configs.TagVersion:
		return strconv.Itoa(s.Version)
	case configs.TagShowSuggestion:
		return strconv.FormatBool(s.ShowSuggestion)
	case configs.TagStylesheetPath:
		return s.StylesheetPath
	case configs.TagGradientBrightness:
		return strconv.Itoa(s.GradientBrightness)
	case configs.TagGradientDarkness:
		return strconv.Itoa(s.GradientDarkness)
	case configs.TagHashSource:
		return s.HashSource.String()
	case configs.TagProjectIndicators:
		return strings.Join(s.ProjectIndicators, ",")
	case configs.TagLightColors:
		return hexList(s.Palette.Light)
	case configs.TagDarkColors:
		return hexList(s.Palette.Dark)
	default:
		return ""
	}
}

func hexList(colors []rgba.Color) string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return strings.Join(out, " ")
}
