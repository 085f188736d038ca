package memory

import (
	"context"
	"fmt"
	"sort"
)

// Source implements ports.Source over an in-memory set of documents.
// Discovery order is the lexical order of the paths.
type Source struct {
	files map[string][]byte
}

// NewSource creates a Source from path -> content pairs.
func NewSource(files map[string]string) *Source {
	data := make(map[string][]byte, len(files))
	for k, v := range files {
		data[k] = []byte(v)
	}
	return &Source{files: data}
}

// Discover returns all paths in lexical order.
func (s *Source) Discover(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s.files))
	for k := range s.files {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys, nil
}

// Read returns the content stored under path.
func (s *Source) Read(ctx context.Context, path string) ([]byte, error) {
	content, ok := s.files[path]
	if !ok {
		return nil, fmt.Errorf("document not found: %s", path)
	}
	return content, nil
}
