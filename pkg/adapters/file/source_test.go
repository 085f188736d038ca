package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/edmcheck/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ ports.Source    = (*Source)(nil)
	_ ports.Watchable = (*Source)(nil)
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestSource_Discover(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"examples/b.ddna.json":        `{}`,
		"examples/a.ddna.json":        `{"id":"a1"}`,
		"examples/notes.json":         `{}`,
		"examples/nested/c.ddna.json": `{}`,
	})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "examples", "dir.ddna.json"), 0755))

	ctx := context.Background()

	t.Run("Single level pattern", func(t *testing.T) {
		src := NewSource(dir, "examples/*.ddna.json")
		paths, err := src.Discover(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"examples/a.ddna.json", "examples/b.ddna.json"}, paths)
	})

	t.Run("Recursive pattern", func(t *testing.T) {
		src := NewSource(dir, "examples/**/*.ddna.json")
		paths, err := src.Discover(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{
			"examples/a.ddna.json",
			"examples/b.ddna.json",
			"examples/nested/c.ddna.json",
		}, paths)
	})

	t.Run("No matches is not an error", func(t *testing.T) {
		src := NewSource(dir, "missing/*.ddna.json")
		paths, err := src.Discover(ctx)
		require.NoError(t, err)
		assert.Empty(t, paths)
		assert.NotNil(t, paths)
	})

	t.Run("Bad pattern", func(t *testing.T) {
		src := NewSource(dir, "examples/[")
		_, err := src.Discover(ctx)
		assert.Error(t, err)
	})
}

func TestSource_Read(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"examples/a.ddna.json": `{"id":"a1"}`})

	src := NewSource(dir, "examples/*.ddna.json")
	content, err := src.Read(context.Background(), "examples/a.ddna.json")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"a1"}`, string(content))

	_, err = src.Read(context.Background(), "examples/ghost.ddna.json")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSource_Watch(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"examples/a.ddna.json":        `{}`,
		"schema/edm.v0.4.schema.json": `{}`,
	})

	src := NewSource(dir, "examples/*.ddna.json")
	src.ExtraWatch = []string{filepath.Join(dir, "schema", "edm.v0.4.schema.json")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := src.Watch(ctx)
	require.NoError(t, err)

	target := filepath.Join(dir, "examples", "b.ddna.json")
	require.NoError(t, os.WriteFile(target, []byte(`{}`), 0644))

	select {
	case name := <-events:
		assert.Equal(t, target, name)
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change event")
	}

	cancel()
	// Drain until the watcher goroutine closes the channel.
	for range events {
	}
}

func TestSource_WatchMissingRoot(t *testing.T) {
	src := NewSource(t.TempDir(), "missing/*.ddna.json")
	_, err := src.Watch(context.Background())
	assert.Error(t, err)
}
