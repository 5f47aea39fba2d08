package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
	"github.com/PolarWolf314/pigment/internal/identity"
	"github.com/PolarWolf314/pigment/internal/palette"
	"github.com/PolarWolf314/pigment/internal/rgba"
	"github.com/PolarWolf314/pigment/internal/store"
	"github.com/PolarWolf314/pigment/internal/tint"
	"github.com/PolarWolf314/pigment/internal/utils"
)

// ColorOptions configures the color workflow.
type ColorOptions struct {
	// Path is any path inside the workspace. Empty means the working directory.
	Path string

	Theme palette.Theme

	// Source overrides the stored hash source when set.
	Source identity.Source

	// Now fixes the clock for day-based identities. Zero means time.Now().
	Now time.Time
}

// ColorResult contains the colors derived for a workspace.
type ColorResult struct {
	// Root is the discovered workspace root.
	Root string

	// Identity is the string that was hashed.
	Identity string

	Source identity.Source
	Theme  palette.Theme

	// Scalar is the hash position in [0,1).
	Scalar float64

	Accent rgba.Color

	// Inactive is the grey-darkened accent as #rrggbbaa.
	Inactive string

	// Foreground is black or white, whichever reads better on Accent.
	Foreground rgba.Color

	// GradientStart and GradientEnd are the accent at the configured
	// brightness and darkness opacities.
	GradientStart rgba.Color
	GradientEnd   rgba.Color
}

// Color derives the accent colors for the workspace containing opts.Path.
//
// Returns ErrPathNotFound if the path does not exist.
func Color(ctx context.Context, st *store.Store, opts ColorOptions) (*ColorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := opts.Path
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		start = wd
	}
	if !utils.PathExists(start) {
		return nil, fmt.Errorf("%w: %s", perrors.ErrPathNotFound, start)
	}
	if info, err := os.Stat(start); err == nil && !info.IsDir() {
		start = filepath.Dir(start)
	}

	root, err := identity.FindRoot(start, st.ProjectIndicators())
	if err != nil {
		return nil, fmt.Errorf("finding workspace root: %w", err)
	}

	source := opts.Source
	if source == "" {
		source = st.HashSource()
	}
	id := identity.Build(identity.Options{Root: root, Source: source, Now: opts.Now})

	k := tint.Scalar(id)
	accent := tint.ByScalar(k, st.Palette(), opts.Theme)

	inactive, err := st.GreyDarken(accent.Hex())
	if err != nil {
		return nil, fmt.Errorf("rendering inactive color: %w", err)
	}

	return &ColorResult{
		Root:          root,
		Identity:      id,
		Source:        source,
		Theme:         opts.Theme,
		Scalar:        k,
		Accent:        accent,
		Inactive:      inactive,
		Foreground:    accent.Foreground(),
		GradientStart: accent.WithAlpha(float64(st.GradientBrightness()) / 100),
		GradientEnd:   accent.WithAlpha(float64(st.GradientDarkness()) / 100),
	}, nil
}
