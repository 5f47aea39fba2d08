// Package workflows provides high-level orchestration for pigment commands.
//
// Workflows coordinate the store, identity resolution, and the color engine
// to implement complete user-facing features. Each workflow handles a single
// command's business logic, independent of CLI concerns like flag parsing,
// spinners, and output formatting.
//
// # Available Workflows
//
//   - Open: resolves the state file and loads the settings store
//   - Color: derives the accent colors for a workspace
//   - ShowConfig, SetConfig, ResetConfig: inspect and change settings
//   - ExportConfig, ImportConfig: move settings through a TOML file
//   - Watch: re-derives colors whenever the stored settings change
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package, allowing
// the CLI layer to provide appropriate user-facing messages without string
// matching:
//
//	_, err := workflows.SetConfig(ctx, st, "gradient-brightness", "150")
//	if errors.Is(err, perrors.ErrInvalidPercent) {
//	    // Show the accepted range
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter.
package workflows
