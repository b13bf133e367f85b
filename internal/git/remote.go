package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	spriteiterrors "spriteit.dev/spriteit/internal/errors"
)

// Remotes returns the names of all configured remotes
func (r *Runner) Remotes(ctx context.Context) ([]string, error) {
	lines, err := r.RunLines(ctx, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	return lines, nil
}

// HasRemote reports whether the named remote is configured
func (r *Runner) HasRemote(ctx context.Context, name string) (bool, error) {
	remotes, err := r.Remotes(ctx)
	if err != nil {
		return false, err
	}
	for _, remote := range remotes {
		if remote == name {
			return true, nil
		}
	}
	return false, nil
}

// AddRemote adds a named remote pointing at url
func (r *Runner) AddRemote(ctx context.Context, name, url string) error {
	if _, err := r.Run(ctx, "remote", "add", name, url); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", name, err)
	}
	return nil
}

// Fetch fetches from the named remote
func (r *Runner) Fetch(ctx context.Context, remote string) error {
	if _, err := r.Run(ctx, "fetch", remote); err != nil {
		return fmt.Errorf("failed to fetch from %s: %w", remote, err)
	}
	return nil
}

// PullResult describes the outcome of a pull
type PullResult int

const (
	// PullDone indicates commits were brought in
	PullDone PullResult = iota
	// PullUnneeded indicates the branch was already up to date
	PullUnneeded
	// PullDiverged indicates local and remote histories have diverged and
	// a fast-forward was not possible
	PullDiverged
)

// PullFastForward pulls the current branch from remote, fast-forward only.
// Divergent histories are reported, never merged; a single-artist
// repository should not silently grow merge commits.
func (r *Runner) PullFastForward(ctx context.Context, remote string) (PullResult, error) {
	before, err := r.HeadSHA(ctx)
	if err != nil {
		return PullUnneeded, err
	}

	// Name the branch explicitly so the pull works before any upstream
	// tracking has been configured
	branch, err := r.Run(ctx, "branch", "--show-current")
	if err != nil {
		return PullUnneeded, fmt.Errorf("failed to determine current branch: %w", err)
	}
	if branch == "" {
		return PullUnneeded, fmt.Errorf("cannot pull: HEAD is not on a branch")
	}

	_, err = r.Run(ctx, "pull", "--ff-only", remote, branch)
	if err != nil {
		if gitErrContains(err, "divergent", "not possible to fast-forward", "Not possible to fast-forward") {
			return PullDiverged, nil
		}
		// A freshly created remote has no refs yet; there is nothing to pull
		if gitErrContains(err, "couldn't find remote ref", "Couldn't find remote ref") {
			return PullUnneeded, nil
		}
		return PullUnneeded, fmt.Errorf("failed to pull from %s: %w", remote, err)
	}

	after, err := r.HeadSHA(ctx)
	if err != nil {
		return PullDone, err
	}
	if before == after {
		return PullUnneeded, nil
	}
	return PullDone, nil
}

// Push pushes the current branch to remote, setting upstream on first push
func (r *Runner) Push(ctx context.Context, remote string) error {
	branch, err := r.Run(ctx, "branch", "--show-current")
	if err != nil {
		return fmt.Errorf("failed to determine current branch: %w", err)
	}
	if branch == "" {
		return fmt.Errorf("cannot push: HEAD is not on a branch")
	}

	if _, err := r.Run(ctx, "push", "-u", remote, branch); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", branch, remote, err)
	}
	return nil
}

// gitErrContains checks a GitCommandError's stderr for any of the given
// fragments.
func gitErrContains(err error, fragments ...string) bool {
	var gitErr *spriteiterrors.GitCommandError
	if !errors.As(err, &gitErr) {
		return false
	}
	for _, fragment := range fragments {
		if strings.Contains(gitErr.Stderr, fragment) || strings.Contains(gitErr.Stdout, fragment) {
			return true
		}
	}
	return false
}
