package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ExpectCommitCount asserts that the repository has exactly the expected
// number of commits.
func ExpectCommitCount(t *testing.T, repo *GitRepo, expected int) {
	t.Helper()
	count, err := repo.CommitCount()
	require.NoError(t, err, "Failed to count commits")
	require.Equal(t, expected, count, "Commit count does not match")
}

// ExpectCleanTree asserts that the repository has no uncommitted changes.
func ExpectCleanTree(t *testing.T, repo *GitRepo) {
	t.Helper()
	dirty, err := repo.HasUncommittedChanges()
	require.NoError(t, err)
	require.False(t, dirty, "Expected a clean working tree")
}

// ExpectFileExists asserts that a path exists and is a regular file.
func ExpectFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "Expected %s to exist", path)
	require.True(t, info.Mode().IsRegular(), "Expected %s to be a regular file", path)
}

// ExpectRepository asserts that dir contains a .git directory.
func ExpectRepository(t *testing.T, dir string) {
	t.Helper()
	info, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, "Expected %s to be a repository", dir)
	require.True(t, info.IsDir(), "Expected %s/.git to be a directory", dir)
}
