package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "edmcheck.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("schema: from-file.json\npattern: file/*.json\nformat: markdown\n"), 0644))
	t.Setenv("EDMCHECK_PATTERN", "env/*.json")

	require.NoError(t, rootCmd.ParseFlags([]string{"--config", cfgPath, "--format", "json", "--no-color"}))

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, "from-file.json", cfg.Schema)
	assert.Equal(t, "env/*.json", cfg.Pattern)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "never", cfg.Color)
}
