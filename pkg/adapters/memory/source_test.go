package memory

import (
	"context"
	"testing"

	"github.com/aretw0/edmcheck/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.Source = (*Source)(nil)

func TestSource(t *testing.T) {
	src := NewSource(map[string]string{
		"examples/b.ddna.json": `{}`,
		"examples/a.ddna.json": `{"id":"a1"}`,
	})
	ctx := context.Background()

	paths, err := src.Discover(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"examples/a.ddna.json", "examples/b.ddna.json"}, paths)

	content, err := src.Read(ctx, "examples/a.ddna.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a1"}`, string(content))

	_, err = src.Read(ctx, "examples/ghost.ddna.json")
	assert.Error(t, err)
}

func TestSource_Empty(t *testing.T) {
	paths, err := NewSource(nil).Discover(context.Background())
	require.NoError(t, err)
	assert.Empty(t, paths)
}
