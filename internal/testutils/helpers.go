package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SchemaFile is the file name fixtures use, so the summary label is "edm.v0.4".
const SchemaFile = "edm.v0.4.schema.json"

// WriteSchema stores content as SchemaFile in a fresh temp dir and returns its path.
// It fails the test immediately on error.
func WriteSchema(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), SchemaFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write schema")
	return path
}

// SetupProject lays out schema/<SchemaFile> and examples/<name> under a temp dir.
// It returns the absolute schema path and a glob matching every *.ddna.json
// in the examples directory.
func SetupProject(t *testing.T, schema string, examples map[string]string) (schemaPath, pattern string) {
	t.Helper()

	root, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	schemaDir := filepath.Join(root, "schema")
	exampleDir := filepath.Join(root, "examples")
	require.NoError(t, os.MkdirAll(schemaDir, 0755))
	require.NoError(t, os.MkdirAll(exampleDir, 0755))

	schemaPath = filepath.Join(schemaDir, SchemaFile)
	require.NoError(t, os.WriteFile(schemaPath, []byte(schema), 0644), "Failed to write schema")

	for name, content := range examples {
		require.NoError(t, os.WriteFile(filepath.Join(exampleDir, name), []byte(content), 0644), "Failed to write %s", name)
	}

	return schemaPath, filepath.Join(exampleDir, "*.ddna.json")
}
