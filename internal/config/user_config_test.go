package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"spriteit.dev/spriteit/internal/config"
)

func TestLoadUserConfigDefaults(t *testing.T) {
	t.Setenv("SPRITEIT_CONFIG_DIR", t.TempDir())

	cfg, err := config.LoadUserConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.RememberedRepo)
	require.Equal(t, "origin", cfg.DefaultRemote)
	require.Equal(t, 50, cfg.HistoryLimit)
	require.Empty(t, cfg.OpenCommand)
}

func TestUserConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPRITEIT_CONFIG_DIR", dir)

	cfg, err := config.LoadUserConfig()
	require.NoError(t, err)

	cfg.RememberedRepo = "/art/hero"
	cfg.DefaultRemote = "backup"
	cfg.HistoryLimit = 10
	require.NoError(t, cfg.Save())

	require.FileExists(t, filepath.Join(dir, "config.yaml"))

	loaded, err := config.LoadUserConfig()
	require.NoError(t, err)
	require.Equal(t, "/art/hero", loaded.RememberedRepo)
	require.Equal(t, "backup", loaded.DefaultRemote)
	require.Equal(t, 10, loaded.HistoryLimit)
}

func TestUserConfigSet(t *testing.T) {
	t.Setenv("SPRITEIT_CONFIG_DIR", t.TempDir())

	cfg, err := config.LoadUserConfig()
	require.NoError(t, err)

	require.NoError(t, cfg.Set("history_limit", "25"))
	require.Equal(t, 25, cfg.HistoryLimit)

	require.Error(t, cfg.Set("history_limit", "lots"))
	require.Error(t, cfg.Set("history_limit", "-1"))
	require.Error(t, cfg.Set("history_limit", "12abc"), "trailing garbage must not parse")
	require.Error(t, cfg.Set("favorite_color", "teal"))

	value, err := cfg.Get("history_limit")
	require.NoError(t, err)
	require.Equal(t, "25", value)

	_, err = cfg.Get("favorite_color")
	require.Error(t, err)
}

func TestConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPRITEIT_CONFIG_DIR", dir)

	got, err := config.ConfigDir()
	require.NoError(t, err)
	require.Equal(t, dir, got)
}

func TestLoadUserConfigRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SPRITEIT_CONFIG_DIR", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":\n\t- nope"), 0600))

	_, err := config.LoadUserConfig()
	require.Error(t, err)
}
