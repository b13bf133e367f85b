package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spriteit.dev/spriteit/testhelpers"
)

func TestStatusCommand(t *testing.T) {
	t.Parallel()
	getSpriteitBinary(t)

	t.Run("reports a clean tree", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		output, err := scene.CliCommandAndGetOutput("status")
		require.NoError(t, err, "status failed: %s", output)
		require.Contains(t, output, "Everything is saved")
		require.Contains(t, output, "Enlisted file: "+testhelpers.SpriteFileName)
	})

	t.Run("reports unsaved changes", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		require.NoError(t, scene.Repo.WriteSprite([]byte("ASEPRITE\x00v2 pixels")))

		output, err := scene.CliCommandAndGetOutput("status")
		require.NoError(t, err, "status failed: %s", output)
		require.Contains(t, output, "Unsaved changes")
		require.Contains(t, output, "spriteit snapshot")
	})

	t.Run("errors outside a repository with nothing remembered", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		output, err := scene.CliCommandAndGetOutput("status")
		require.Error(t, err, "status should fail with no repository anywhere")
		require.Contains(t, output, "not inside a repository")
	})

	t.Run("honors the --repo flag", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		// Run from an unrelated directory; only --repo points at the repository
		other := testhelpers.NewScene(t)
		cmd := other.CliCmd("status", "--repo", scene.RepoDir())
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "status --repo failed: %s", string(output))
		require.Contains(t, string(output), "Everything is saved")
	})
}
