package identity

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot walks up from start until it finds a directory containing one of
// the indicator files or directories. If none is found, the absolute start
// directory is returned.
func FindRoot(start string, indicators []string) (string, error) {
	absStart, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	if len(indicators) == 0 {
		return absStart, nil
	}

	dir := absStart
	for {
		for _, indicator := range indicators {
			if indicator == "" {
				continue
			}
			_, err := os.Stat(filepath.Join(dir, indicator))
			if err == nil {
				return dir, nil
			}
			if !os.IsNotExist(err) {
				return "", fmt.Errorf("error checking for %s at %s: %w", indicator, dir, err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return absStart, nil
		}
		dir = parent
	}
}
