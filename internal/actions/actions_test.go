package actions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"spriteit.dev/spriteit/internal/runtime"
)

// newTestContext builds a runtime context with an isolated config dir and
// a git identity, so actions can commit without touching the real home.
func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()

	t.Setenv("SPRITEIT_CONFIG_DIR", t.TempDir())
	t.Setenv("GIT_CONFIG_GLOBAL", "/dev/null")
	t.Setenv("GIT_AUTHOR_NAME", "Test Artist")
	t.Setenv("GIT_AUTHOR_EMAIL", "artist@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test Artist")
	t.Setenv("GIT_COMMITTER_EMAIL", "artist@example.com")

	rt, err := runtime.NewContext()
	require.NoError(t, err)
	rt.Splog.SetQuiet(true)
	return rt
}
