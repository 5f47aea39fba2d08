package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// StateFileEnv overrides the default state file location.
const StateFileEnv = "PIGMENT_STATE_FILE"

// StateFilePath resolves the state file location. An explicit override wins,
// then $PIGMENT_STATE_FILE, then pigment/state.toml under the user config
// directory.
func StateFilePath(override string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	if env := os.Getenv(StateFileEnv); env != "" {
		return filepath.Abs(env)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "pigment", "state.toml"), nil
}

// PathExists reports whether path exists. Errors other than "not found"
// count as existing, so callers surface them when they open the path.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
