package identity

import (
	"path/filepath"
	"strconv"
	"time"
)

// Options configures identity construction.
type Options struct {
	// Root is the absolute workspace root.
	Root string

	// Source selects the identity strategy.
	Source Source

	// Now is used by ByProjectNameAndDay. Zero means time.Now().
	Now time.Time
}

// Build returns the identity string for a workspace. Branch-aware sources
// fall back to the base identity when no branch can be resolved.
func Build(opts Options) string {
	root := filepath.Clean(opts.Root)

	base := filepath.Base(root)
	if opts.Source.usesPath() {
		base = root
	}

	switch {
	case opts.Source == ByProjectNameAndDay:
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		return base + strconv.Itoa(now.Day())
	case opts.Source.usesBranch():
		branch, err := GitBranch(root)
		if err != nil || branch == "" {
			return base
		}
		return base + branch
	default:
		return base
	}
}
