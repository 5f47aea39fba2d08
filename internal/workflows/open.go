package workflows

import (
	"context"
	"fmt"

	logger "github.com/PolarWolf314/pigment/internal/logging"
	"github.com/PolarWolf314/pigment/internal/store"
	"github.com/PolarWolf314/pigment/internal/utils"
)

// OpenOptions configures the open workflow.
type OpenOptions struct {
	// StatePath overrides the state file location.
	StatePath string

	Logger logger.Logger
}

// Session is a loaded settings store and how it was loaded.
type Session struct {
	Store     *store.Store
	Backend   *store.FileBackend
	Report    store.LoadReport
	StatePath string
}

// Open resolves the state file and loads the store from it. Load problems
// never fail Open; they are described by Session.Report.
func Open(ctx context.Context, opts OpenOptions) (*Session, error) {
	path, err := utils.StateFilePath(opts.StatePath)
	if err != nil {
		return nil, fmt.Errorf("resolving state file: %w", err)
	}

	backend, err := store.NewFileBackend(path)
	if err != nil {
		return nil, err
	}
	backend.Logger = opts.Logger

	st := store.New(backend, store.WithLogger(opts.Logger))
	report := st.Load(ctx)
	opts.Logger.Debugf("Loaded settings from %s: %s", backend.Path(), report.Outcome)
	if report.Cause != nil {
		opts.Logger.Debugf("Settings fell back to defaults: %v", report.Cause)
	}

	return &Session{
		Store:     st,
		Backend:   backend,
		Report:    report,
		StatePath: backend.Path(),
	}, nil
}
