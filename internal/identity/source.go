// Package identity builds the string whose hash seeds a workspace's accent color.
package identity

import (
	"fmt"
	"strings"

	perrors "github.com/PolarWolf314/pigment/internal/errors"
)

// Source selects how the identity string is built.
type Source string

// Supported sources.
const (
	ByProjectName          Source = "name"
	ByFullPath             Source = "path"
	ByProjectNameAndDay    Source = "name-day"
	ByProjectNameAndBranch Source = "name-branch"
	ByFullPathAndBranch    Source = "path-branch"
)

// sourceTags pins each source to its persisted integer. Entries are never
// renumbered or reused; new sources get the next free tag.
var sourceTags = []struct {
	source Source
	tag    int
}{
	{ByProjectName, 0},
	{ByFullPath, 1},
	{ByProjectNameAndDay, 2},
	{ByProjectNameAndBranch, 3},
	{ByFullPathAndBranch, 4},
}

// AllSources returns every supported source in tag order.
func AllSources() []Source {
	sources := make([]Source, 0, len(sourceTags))
	for _, st := range sourceTags {
		sources = append(sources, st.source)
	}
	return sources
}

// Tag returns the persisted integer for s.
func (s Source) Tag() (int, bool) {
	for _, st := range sourceTags {
		if st.source == s {
			return st.tag, true
		}
	}
	return 0, false
}

// SourceForTag returns the source persisted as tag.
func SourceForTag(tag int) (Source, bool) {
	for _, st := range sourceTags {
		if st.tag == tag {
			return st.source, true
		}
	}
	return "", false
}

// ParseSource converts a CLI name such as "name-branch" to a Source.
func ParseSource(s string) (Source, error) {
	want := Source(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := want.Tag(); ok {
		return want, nil
	}
	names := make([]string, 0, len(sourceTags))
	for _, st := range sourceTags {
		names = append(names, string(st.source))
	}
	return "", fmt.Errorf("%w %q (expected one of %s)", perrors.ErrInvalidHashSource, s, strings.Join(names, ", "))
}

func (s Source) String() string {
	return string(s)
}

// usesBranch reports whether the source appends the current Git branch.
func (s Source) usesBranch() bool {
	return s == ByProjectNameAndBranch || s == ByFullPathAndBranch
}

// usesPath reports whether the source starts from the full root path.
func (s Source) usesPath() bool {
	return s == ByFullPath || s == ByFullPathAndBranch
}
