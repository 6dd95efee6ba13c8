// Test Type: Unit Test
// Description: Tests for the config package - layered loading and merge semantics

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NexushasTaken/mdot/pkg/config"
	"github.com/NexushasTaken/mdot/pkg/errors"
	"github.com/NexushasTaken/mdot/pkg/paths"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("merges_files_in_order", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, t.TempDir())
		dir := t.TempDir()

		base := writeConfig(t, dir, "base.toml", `
[packages.git]
depends = ["fish"]

[packages.fish]
`)
		override := writeConfig(t, dir, "laptop.toml", `
[resolver]
strict = true

[packages.git]
depends = []

[packages.hypr]
depends = ["fish"]
`)

		cfg, err := config.Load(paths.New(), []string{base, override})
		require.NoError(t, err)

		assert.True(t, cfg.Strict)
		assert.Equal(t, []string{base, override}, cfg.Sources)

		// Later file replaces the earlier git entry but keeps its position
		assert.Equal(t, []string{"git", "fish", "hypr"}, cfg.Entries.Names())
		git, ok := cfg.Entries.Get("git")
		require.True(t, ok)
		assert.Empty(t, git.Depends)
	})

	t.Run("defaults_without_any_files", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, t.TempDir())

		cfg, err := config.Load(paths.New(), nil)
		require.NoError(t, err)
		assert.False(t, cfg.Strict)
		assert.Equal(t, 0, cfg.Entries.Len())
	})

	t.Run("picks_up_user_config_file", func(t *testing.T) {
		configDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, configDir)
		writeConfig(t, configDir, "mdot.toml", `
[packages.fish]
`)

		cfg, err := config.Load(paths.New(), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"fish"}, cfg.Entries.Names())
	})

	t.Run("missing_file_fails", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, t.TempDir())

		_, err := config.Load(paths.New(), []string{"/nonexistent/mdot.toml"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("invalid_toml_fails_with_path_detail", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, t.TempDir())
		dir := t.TempDir()
		bad := writeConfig(t, dir, "bad.toml", `[packages`)

		_, err := config.Load(paths.New(), []string{bad})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Equal(t, bad, errors.GetErrorDetails(err)["path"])
	})

	t.Run("malformed_entry_names_file", func(t *testing.T) {
		t.Setenv(paths.EnvConfigDir, t.TempDir())
		dir := t.TempDir()
		bad := writeConfig(t, dir, "bad.toml", `
[packages.x]
depends = 42
`)

		_, err := config.Load(paths.New(), []string{bad})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedEntry))
		details := errors.GetErrorDetails(err)
		assert.Equal(t, "x", details["name"])
		assert.Equal(t, bad, details["path"])
	})
}
