package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, domain.DefaultSchemaPath, cfg.Schema)
	assert.Equal(t, domain.DefaultPattern, cfg.Pattern)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "draft-07", cfg.Validation.Draft)
	assert.True(t, cfg.Validation.Strict)
	assert.True(t, cfg.Validation.AllowUnionTypes)
	assert.True(t, cfg.Validation.AssertFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OptionalFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_RequiredFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "custom.yaml"), true)
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
schema: schemas/edm.v0.5.schema.json
format: json
count_malformed: true
validation:
  draft: "2020-12"
  assert_format: false
log:
  level: debug
serve:
  port: 9090
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "schemas/edm.v0.5.schema.json", cfg.Schema)
	assert.Equal(t, domain.DefaultPattern, cfg.Pattern, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.CountMalformed)
	assert.Equal(t, "2020-12", cfg.Validation.Draft)
	assert.False(t, cfg.Validation.AssertFormat)
	assert.True(t, cfg.Validation.Strict)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "9090", cfg.Serve.Port)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "shema: typo.json\n")
	_, err := Load(path, true)
	assert.Error(t, err)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	path := writeConfig(t, "format: xml\n")
	_, err := Load(path, true)
	assert.ErrorContains(t, err, "unknown format")
}

func TestLoad_RejectsUnknownDraft(t *testing.T) {
	path := writeConfig(t, "validation:\n  draft: draft-99\n")
	_, err := Load(path, true)
	assert.ErrorContains(t, err, "unknown draft")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "pattern: docs/*.json\nformat: json\n")
	t.Setenv("EDMCHECK_PATTERN", "fixtures/*.ddna.json")
	t.Setenv("EDMCHECK_LOG_LEVEL", "warn")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "fixtures/*.ddna.json", cfg.Pattern)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
