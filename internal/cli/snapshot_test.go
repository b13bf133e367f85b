package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spriteit.dev/spriteit/testhelpers"
)

func TestSnapshotCommand(t *testing.T) {
	t.Parallel()
	getSpriteitBinary(t)

	t.Run("commits changes with the given message", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		require.NoError(t, scene.Repo.WriteSprite([]byte("ASEPRITE\x00v2 pixels")))

		output, err := scene.CliCommandAndGetOutput("snapshot", "-m", "Gave the hero a sword")
		require.NoError(t, err, "snapshot failed: %s", output)

		testhelpers.ExpectCommitCount(t, scene.Repo, 2)
		testhelpers.ExpectCleanTree(t, scene.Repo)

		messages, err := scene.Repo.ListCommitMessages()
		require.NoError(t, err)
		require.Equal(t, "Gave the hero a sword", messages[0])
	})

	t.Run("uses a timestamped message when none is given", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		require.NoError(t, scene.Repo.WriteSprite([]byte("ASEPRITE\x00v2 pixels")))

		output, err := scene.CliCommandAndGetOutput("snapshot", "--no-interactive")
		require.NoError(t, err, "snapshot failed: %s", output)

		messages, err := scene.Repo.ListCommitMessages()
		require.NoError(t, err)
		require.Contains(t, messages[0], "Snapshot ")
	})

	t.Run("reports nothing to do when the tree is clean", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		output, err := scene.CliCommandAndGetOutput("snapshot", "-m", "no-op")
		require.NoError(t, err, "a clean tree must not be an error: %s", output)
		require.Contains(t, output, "Nothing new to snapshot")

		// No commit was created
		testhelpers.ExpectCommitCount(t, scene.Repo, 1)
	})

	t.Run("finds the repository through the remembered folder", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		require.NoError(t, scene.Repo.WriteSprite([]byte("ASEPRITE\x00v2 pixels")))

		// The scene dir itself is outside the repository; the command must
		// fall back to the folder recorded at enlist time
		cmd := scene.CliCmd("snapshot", "-m", "from outside")
		cmd.Dir = scene.Dir
		output, err := cmd.CombinedOutput()
		require.NoError(t, err, "snapshot failed: %s", string(output))

		testhelpers.ExpectCommitCount(t, scene.Repo, 2)
	})
}
