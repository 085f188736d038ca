package ports

import "context"

// Source provides the candidate documents of a run.
type Source interface {
	// Discover returns the candidate paths in the order they should be validated.
	// An empty result is not an error.
	Discover(ctx context.Context) ([]string, error)

	// Read returns the raw content of a discovered path.
	Read(ctx context.Context, path string) ([]byte, error)
}

// Watchable defines an interface for sources that can notify about changes.
// This is used by watch mode to re-run the whole batch.
type Watchable interface {
	// Watch returns a channel that receives the name of each changed path.
	// The channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan string, error)
}
