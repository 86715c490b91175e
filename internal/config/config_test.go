package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "craftfile.yaml", cfg.Spec)
	assert.Empty(t, cfg.Output)
	assert.False(t, cfg.Verbose)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{Output: "Containerfile"}).WithDefaults()

	assert.Equal(t, "craftfile.yaml", cfg.Spec)
	assert.Equal(t, "Containerfile", cfg.Output)
}

func TestLoader_NoConfigFile(t *testing.T) {
	cfg, err := NewLoader().Load("")

	require.NoError(t, err)
	assert.Equal(t, "craftfile.yaml", cfg.Spec)
}

func TestLoader_FileValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out/Containerfile\nspec: build.yaml\n"), 0o644))

	cfg, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, "out/Containerfile", cfg.Output)
	assert.Equal(t, "build.yaml", cfg.Spec)
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: from-file\n"), 0o644))

	t.Setenv("CRAFTFILE_OUTPUT", "from-env")

	cfg, err := NewLoader().Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Output)
}
