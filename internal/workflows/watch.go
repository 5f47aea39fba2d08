package workflows

import (
	"context"

	"github.com/PolarWolf314/pigment/internal/store"
)

// ColorChange is delivered by Watch for the initial colors and after every
// external change to the stored settings.
type ColorChange struct {
	Result *ColorResult

	// Report is nil for the initial delivery.
	Report *store.LoadReport

	// Err is set when the colors could not be derived.
	Err error
}

// Watch delivers the workspace colors once, then again each time another
// process changes the stored settings. It blocks until ctx is done.
func Watch(ctx context.Context, st *store.Store, opts ColorOptions, onChange func(ColorChange)) error {
	result, err := Color(ctx, st, opts)
	if err != nil {
		return err
	}
	onChange(ColorChange{Result: result})

	return st.Watch(ctx, func(report store.LoadReport) {
		result, err := Color(ctx, st, opts)
		onChange(ColorChange{Result: result, Report: &report, Err: err})
	})
}
