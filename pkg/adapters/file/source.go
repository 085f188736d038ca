package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Source implements ports.Source on the local filesystem.
// Candidates are the regular files matching Pattern. When Dir is empty the
// pattern is evaluated against the working directory and the returned paths are
// what the pattern yields (e.g. "examples/a.ddna.json"); otherwise it is
// evaluated inside Dir and paths are slash-separated and relative to Dir.
type Source struct {
	Dir     string
	Pattern string

	// ExtraWatch lists additional files or directories Watch should observe
	// (typically the schema file).
	ExtraWatch []string
}

// NewSource creates a filesystem Source for pattern, rooted at dir.
func NewSource(dir, pattern string) *Source {
	return &Source{Dir: dir, Pattern: pattern}
}

// Discover returns the matching files in the order the glob yields them.
func (s *Source) Discover(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !doublestar.ValidatePattern(filepath.ToSlash(s.Pattern)) {
		return nil, fmt.Errorf("invalid pattern %q: %w", s.Pattern, doublestar.ErrBadPattern)
	}

	var (
		matches []string
		err     error
	)
	if s.Dir == "" {
		matches, err = doublestar.FilepathGlob(s.Pattern, doublestar.WithFilesOnly())
	} else {
		matches, err = doublestar.Glob(os.DirFS(s.Dir), filepath.ToSlash(s.Pattern), doublestar.WithFilesOnly())
	}
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", s.Pattern, err)
	}
	if matches == nil {
		matches = []string{}
	}
	return matches, nil
}

// Read returns the content of a discovered path.
func (s *Source) Read(ctx context.Context, path string) ([]byte, error) {
	return os.ReadFile(s.resolve(path))
}

func (s *Source) resolve(path string) string {
	if s.Dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Dir, filepath.FromSlash(path))
}
