package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "json", cfg.Store.Type)
	assert.NotEmpty(t, cfg.Store.Path)
}

func TestValidateRejectsUnknownStoreType(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Store.Type = "postgres"
	assert.Error(t, cfg.Validate())

	cfg.Store.Type = "sqlite"
	cfg.Store.Path = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calm.yaml")
	data := `
store:
  type: sqlite
  path: ./journal.db
export:
  formulas: false
  output_dir: ./out
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Type)
	assert.Equal(t, "./journal.db", cfg.Store.Path)
	assert.False(t, cfg.Export.Formulas)
	assert.Equal(t, "./out", cfg.Export.OutputDir)
}

func TestLoadFromFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calm.json")
	data := `{"store": {"type": "json", "path": "./calm.json"}, "export": {"formulas": true}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Store.Type)
	assert.True(t, cfg.Export.Formulas)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "calm.yaml")

	cfg := Default()
	cfg.Store.Type = "sqlite"
	cfg.Store.Path = "./x.db"
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
