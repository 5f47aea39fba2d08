package identity

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Git errors.
var (
	ErrNotGitRepo    = errors.New("not a git repository")
	ErrMalformedHEAD = errors.New("malformed git HEAD")
)

const detachedPrefix = "detached@"

// GitBranch resolves the current branch of the repository at root by reading
// .git/HEAD directly. A .git file containing "gitdir: <path>" (worktrees and
// submodules) is followed. A detached HEAD renders as detached@<first 8 hex>.
func GitBranch(root string) (string, error) {
	gitDir, err := resolveGitDir(root)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD in %s: %w", gitDir, err)
	}

	return parseHEAD(strings.TrimSpace(string(data)))
}

func resolveGitDir(root string) (string, error) {
	gitPath := filepath.Join(root, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotGitRepo, root)
		}
		return "", fmt.Errorf("error checking for .git at %s: %w", root, err)
	}
	if info.IsDir() {
		return gitPath, nil
	}

	data, err := os.ReadFile(gitPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", gitPath, err)
	}

	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", fmt.Errorf("%w: %s has no gitdir line", ErrNotGitRepo, gitPath)
	}
	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(root, target)
	}
	return filepath.Clean(target), nil
}

func parseHEAD(head string) (string, error) {
	if ref, ok := strings.CutPrefix(head, "ref:"); ok {
		ref = strings.TrimSpace(ref)
		branch := strings.TrimPrefix(ref, "refs/heads/")
		if branch == "" {
			return "", ErrMalformedHEAD
		}
		return branch, nil
	}

	if len(head) >= 8 && isHex(head) {
		return detachedPrefix + head[:8], nil
	}
	return "", fmt.Errorf("%w: %q", ErrMalformedHEAD, head)
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
