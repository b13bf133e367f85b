package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spriteit.dev/spriteit/testhelpers"
)

func TestConfigCommand(t *testing.T) {
	t.Parallel()
	getSpriteitBinary(t)

	t.Run("lists the defaults", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		output, err := scene.CliCommandAndGetOutput("config", "list")
		require.NoError(t, err, "config list failed: %s", output)
		require.Contains(t, output, "default_remote = origin")
		require.Contains(t, output, "history_limit = 50")
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		output, err := scene.CliCommandAndGetOutput("config", "set", "default_remote", "backup")
		require.NoError(t, err, "config set failed: %s", output)

		output, err = scene.CliCommandAndGetOutput("config", "get", "default_remote")
		require.NoError(t, err, "config get failed: %s", output)
		require.Contains(t, output, "backup")
	})

	t.Run("errors on an unknown key", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		_, err := scene.CliCommandAndGetOutput("config", "get", "favorite_color")
		require.Error(t, err, "config get should fail for an unknown key")
	})

	t.Run("prints the config location", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		output, err := scene.CliCommandAndGetOutput("config", "path")
		require.NoError(t, err, "config path failed: %s", output)
		require.Contains(t, output, scene.ConfigDir)
	})
}
