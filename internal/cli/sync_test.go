package cli_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"spriteit.dev/spriteit/testhelpers"
)

func TestSyncCommand(t *testing.T) {
	t.Parallel()
	getSpriteitBinary(t)

	t.Run("pushes snapshots to the remote", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		output, err := scene.CliCommandAndGetOutput("sync")
		require.NoError(t, err, "sync failed: %s", output)
		require.Contains(t, output, "Pushed snapshots to origin")

		bare := &testhelpers.GitRepo{Dir: bareDir}
		count, err := bare.CommitCount()
		require.NoError(t, err)
		require.Equal(t, 1, count, "the remote should hold the pushed snapshot")
	})

	t.Run("pulls snapshots made elsewhere", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		output, err := scene.CliCommandAndGetOutput("sync")
		require.NoError(t, err, "first sync failed: %s", output)

		// Commit from a second clone, as another machine would
		clone := cloneRepo(t, bareDir)
		require.NoError(t, clone.WriteSprite([]byte("ASEPRITE\x00v2 from elsewhere")))
		require.NoError(t, clone.CommitAll("Edited on the laptop"))
		require.NoError(t, clone.RunGitCommand("push", "origin", "main"))

		output, err = scene.CliCommandAndGetOutput("sync")
		require.NoError(t, err, "second sync failed: %s", output)
		require.Contains(t, output, "Pulled new snapshots from origin")

		testhelpers.ExpectCommitCount(t, scene.Repo, 2)
	})

	t.Run("refuses to merge diverged histories", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		bareDir, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		output, err := scene.CliCommandAndGetOutput("sync")
		require.NoError(t, err, "first sync failed: %s", output)

		// Diverge: one commit in a clone, a different one locally
		clone := cloneRepo(t, bareDir)
		require.NoError(t, clone.WriteSprite([]byte("ASEPRITE\x00remote edit")))
		require.NoError(t, clone.CommitAll("Remote edit"))
		require.NoError(t, clone.RunGitCommand("push", "origin", "main"))

		require.NoError(t, scene.Repo.WriteSprite([]byte("ASEPRITE\x00local edit")))
		require.NoError(t, scene.Repo.CommitAll("Local edit"))

		output, err = scene.CliCommandAndGetOutput("sync")
		require.Error(t, err, "sync must not merge diverged histories")
		require.Contains(t, output, "diverged")
	})

	t.Run("adds the remote from --remote on first sync", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		bareDir := filepath.Join(scene.Dir, "backup.git")
		initBare(t, bareDir)

		output, err := scene.CliCommandAndGetOutput("sync", "--remote", bareDir)
		require.NoError(t, err, "sync --remote failed: %s", output)
		require.Contains(t, output, "Added remote origin")

		bare := &testhelpers.GitRepo{Dir: bareDir}
		count, err := bare.CommitCount()
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("errors when no remote is configured", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		output, err := scene.CliCommandAndGetOutput("sync")
		require.Error(t, err, "sync should fail without a remote")
		require.Contains(t, output, "no remote named")
	})

	t.Run("--push-only skips the pull leg", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewEnlistedScene(t)

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		output, err := scene.CliCommandAndGetOutput("sync", "--push-only")
		require.NoError(t, err, "sync --push-only failed: %s", output)
		require.Contains(t, output, "Pushed snapshots to origin")
		require.NotContains(t, output, "up to date")
	})
}

// cloneRepo clones a bare repository into a temp dir and configures a
// test identity.
func cloneRepo(t *testing.T, bareDir string) *testhelpers.GitRepo {
	t.Helper()

	cloneDir := filepath.Join(t.TempDir(), "clone")
	cmd := exec.Command("git", "clone", bareDir, cloneDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "clone failed: %s", string(out))

	repo, err := testhelpers.WrapGitRepo(cloneDir)
	require.NoError(t, err)
	require.NoError(t, repo.RunGitCommand("config", "user.name", "Test Artist"))
	require.NoError(t, repo.RunGitCommand("config", "user.email", "artist@example.com"))
	return repo
}

// initBare creates a bare repository without adding it as a remote.
func initBare(t *testing.T, dir string) {
	t.Helper()

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", "--bare", dir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "bare init failed: %s", string(out))
}
