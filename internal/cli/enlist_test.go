package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"spriteit.dev/spriteit/testhelpers"
)

func TestEnlistCommand(t *testing.T) {
	t.Parallel()
	getSpriteitBinary(t)

	t.Run("moves the file into its own folder and creates one commit", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		output, err := scene.CliCommandAndGetOutput("enlist", testhelpers.SpriteFileName)
		require.NoError(t, err, "enlist failed: %s", output)

		repoDir := scene.RepoDir()
		require.Equal(t, filepath.Join(scene.Dir, "hero"), repoDir,
			"folder should be named after the file without its extension")
		testhelpers.ExpectRepository(t, repoDir)
		testhelpers.ExpectFileExists(t, filepath.Join(repoDir, testhelpers.SpriteFileName))

		// The file must no longer be at its original location
		_, err = os.Stat(filepath.Join(scene.Dir, testhelpers.SpriteFileName))
		require.True(t, os.IsNotExist(err), "original file location should be empty after enlist")

		repo, err := testhelpers.WrapGitRepo(repoDir)
		require.NoError(t, err)
		testhelpers.ExpectCommitCount(t, repo, 1)
		testhelpers.ExpectCleanTree(t, repo)

		messages, err := repo.ListCommitMessages()
		require.NoError(t, err)
		require.Equal(t, []string{"Enlist " + testhelpers.SpriteFileName}, messages)
	})

	t.Run("writes a marker recording the enlisted file", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		markerPath := filepath.Join(scene.RepoDir(), ".git", ".spriteit")
		testhelpers.ExpectFileExists(t, markerPath)

		data, err := os.ReadFile(markerPath)
		require.NoError(t, err)
		require.Contains(t, string(data), testhelpers.SpriteFileName)
	})

	t.Run("writes a default gitignore", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		data, err := os.ReadFile(filepath.Join(scene.RepoDir(), ".gitignore"))
		require.NoError(t, err)
		require.Contains(t, string(data), "*.bak")
	})

	t.Run("remembers the folder in the user config", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		data, err := os.ReadFile(filepath.Join(scene.ConfigDir, "config.yaml"))
		require.NoError(t, err, "enlist should save the user config")
		require.Contains(t, string(data), scene.RepoDir())
	})

	t.Run("--no-remember skips the user config", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		output, err := scene.CliCommandAndGetOutput("enlist", "--no-remember", testhelpers.SpriteFileName)
		require.NoError(t, err, "enlist failed: %s", output)

		_, err = os.Stat(filepath.Join(scene.ConfigDir, "config.yaml"))
		require.True(t, os.IsNotExist(err), "no config file should be written with --no-remember")
	})

	t.Run("--here initializes the repository in place", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		output, err := scene.CliCommandAndGetOutput("enlist", "--here", testhelpers.SpriteFileName)
		require.NoError(t, err, "enlist --here failed: %s", output)

		testhelpers.ExpectRepository(t, scene.Dir)
		testhelpers.ExpectFileExists(t, scene.SpritePath)
	})

	t.Run("errors when the file does not exist", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		output, err := scene.CliCommandAndGetOutput("enlist", "villain.aseprite")
		require.Error(t, err, "enlist should fail for a missing file")
		require.Contains(t, output, "save the file first")
	})

	t.Run("errors when the file is already inside a repository", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		cmd := scene.CliCmd("enlist", testhelpers.SpriteFileName)
		cmd.Dir = scene.RepoDir()
		output, err := cmd.CombinedOutput()
		require.Error(t, err, "enlist should fail inside an existing repository")
		require.Contains(t, string(output), "already inside")
	})

	t.Run("errors when the target folder already exists", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t)

		require.NoError(t, os.Mkdir(filepath.Join(scene.Dir, "hero"), 0750))

		output, err := scene.CliCommandAndGetOutput("enlist", testhelpers.SpriteFileName)
		require.Error(t, err, "enlist should fail when the folder exists")
		require.Contains(t, output, "already exists")

		// The file must stay where it was
		testhelpers.ExpectFileExists(t, filepath.Join(scene.Dir, testhelpers.SpriteFileName))
	})
}
