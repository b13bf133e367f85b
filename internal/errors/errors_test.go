package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"

	spriteiterrors "spriteit.dev/spriteit/internal/errors"
)

func TestRevisionNotFoundError(t *testing.T) {
	t.Parallel()

	err := spriteiterrors.NewRevisionNotFoundError("deadbeef")
	require.Contains(t, err.Error(), "deadbeef")
	require.True(t, stderrors.Is(err, spriteiterrors.ErrRevisionNotFound))
	require.False(t, stderrors.Is(err, spriteiterrors.ErrNotInRepository))
}

func TestEnlistErrorStages(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("disk full")

	tests := []struct {
		stage string
		want  string
	}{
		{spriteiterrors.EnlistStageMove, "still in its original location"},
		{spriteiterrors.EnlistStageInit, "repository could not be created"},
		{spriteiterrors.EnlistStageCommit, "initial commit failed"},
	}
	for _, tt := range tests {
		err := spriteiterrors.NewEnlistError(tt.stage, "/art/hero.aseprite", "/art/hero", cause)
		require.Contains(t, err.Error(), tt.want)
		require.True(t, stderrors.Is(err, cause), "the cause must stay unwrappable")
	}
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("exit status 128")
	err := spriteiterrors.NewGitCommandError("git", []string{"commit", "-m", "x"}, "", "fatal: nope", cause)

	require.Contains(t, err.Error(), "commit")
	require.Contains(t, err.Error(), "fatal: nope")
	require.True(t, stderrors.Is(err, cause))

	var gitErr *spriteiterrors.GitCommandError
	require.True(t, stderrors.As(err, &gitErr))
	require.Equal(t, "fatal: nope", gitErr.Stderr)
}
