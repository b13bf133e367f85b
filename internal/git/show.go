package git

import (
	"context"
	"fmt"
	"strings"

	spriteiterrors "spriteit.dev/spriteit/internal/errors"
)

// ResolveRevision resolves a revision expression to a full commit SHA.
// Returns a RevisionNotFoundError when the expression does not name a
// commit in this repository.
func (r *Runner) ResolveRevision(ctx context.Context, revision string) (string, error) {
	sha, err := r.Run(ctx, "rev-parse", "--verify", "--quiet", revision+"^{commit}")
	if err != nil || sha == "" {
		return "", spriteiterrors.NewRevisionNotFoundError(revision)
	}
	return sha, nil
}

// ShowFileAt returns the raw content of a file at a given revision via
// `git show <rev>:<path>`. The path must be relative to the repository
// root and use forward slashes, which is what git expects regardless of
// the host OS.
func (r *Runner) ShowFileAt(ctx context.Context, revision, relPath string) ([]byte, error) {
	spec := fmt.Sprintf("%s:%s", revision, toGitPath(relPath))
	data, err := r.RunBytes(ctx, "show", spec)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at %s: %w", relPath, revision, err)
	}
	return data, nil
}

// FileExistsAt reports whether a file exists at a given revision
func (r *Runner) FileExistsAt(ctx context.Context, revision, relPath string) bool {
	_, err := r.Run(ctx, "cat-file", "-e", fmt.Sprintf("%s:%s", revision, toGitPath(relPath)))
	return err == nil
}

// toGitPath converts an OS path to the forward-slash form git uses in
// rev:path specs.
func toGitPath(relPath string) string {
	return strings.ReplaceAll(relPath, "\\", "/")
}
