package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `
binary: clang-format-18
style: file
extensions:
  - cu
  - .vert
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "clang-format-18", cfg.Binary)
		assert.Equal(t, "file", cfg.Style)
		assert.Equal(t, []string{"cu", ".vert"}, cfg.Extensions)
	})

	t.Run("empty file yields zero config", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Empty(t, cfg.Binary)
		assert.Empty(t, cfg.Extensions)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), ConfigFile))
		var missing *MissingConfigError
		require.ErrorAs(t, err, &missing)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeConfig(t, "binary: [unclosed"))
		var invalid *InvalidYAMLError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("wrong property type fails schema validation", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeConfig(t, "binary: 5"))
		var invalid *InvalidConfigError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown property fails schema validation", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeConfig(t, "binray: clang-format"))
		var invalid *InvalidConfigError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("bad extension pattern fails schema validation", func(t *testing.T) {
		t.Parallel()
		_, err := Load(writeConfig(t, "extensions: ['c u']"))
		var invalid *InvalidConfigError
		require.ErrorAs(t, err, &invalid)
	})
}

//nolint:paralleltest // os.Chdir is used
func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	t.Run("absent file yields zero config", func(t *testing.T) {
		cfg, err := LoadDefault()
		require.NoError(t, err)
		assert.Empty(t, cfg.Binary)
	})

	t.Run("present file is loaded", func(t *testing.T) {
		require.NoError(t, os.WriteFile(ConfigFile, []byte("binary: myfmt\n"), 0o600))
		cfg, err := LoadDefault()
		require.NoError(t, err)
		assert.Equal(t, "myfmt", cfg.Binary)
	})

	t.Run("broken file is still an error", func(t *testing.T) {
		require.NoError(t, os.WriteFile(ConfigFile, []byte("binary: 5\n"), 0o600))
		_, err := LoadDefault()
		require.Error(t, err)
	})
}
