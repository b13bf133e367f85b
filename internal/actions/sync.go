package actions

import (
	"context"
	"fmt"

	spriteiterrors "spriteit.dev/spriteit/internal/errors"
	"spriteit.dev/spriteit/internal/git"
	"spriteit.dev/spriteit/internal/runtime"
)

// SyncOptions configures the sync action
type SyncOptions struct {
	// PullOnly skips the push leg
	PullOnly bool
	// PushOnly skips the fetch and pull legs
	PushOnly bool
	// RemoteURL adds the remote before syncing when none is configured
	RemoteURL string
}

// SyncAction exchanges snapshots with the configured remote: fetch, then
// fast-forward pull, then push.
func SyncAction(cctx context.Context, rt *runtime.Context, opts SyncOptions) error {
	remote := rt.User.DefaultRemote

	hasRemote, err := rt.Runner.HasRemote(cctx, remote)
	if err != nil {
		return err
	}
	if !hasRemote {
		if opts.RemoteURL == "" {
			return fmt.Errorf("no remote named %q is configured; run 'spriteit sync --remote <url>' to add one: %w",
				remote, spriteiterrors.ErrNoRemote)
		}
		if err := rt.Runner.AddRemote(cctx, remote, opts.RemoteURL); err != nil {
			return err
		}
		rt.Splog.Info("Added remote %s -> %s", remote, opts.RemoteURL)
	}

	if !opts.PushOnly {
		if err := rt.Runner.Fetch(cctx, remote); err != nil {
			return err
		}

		result, err := rt.Runner.PullFastForward(cctx, remote)
		if err != nil {
			return err
		}
		switch result {
		case git.PullDone:
			rt.Splog.Info("Pulled new snapshots from %s", remote)
		case git.PullUnneeded:
			rt.Splog.Info("Already up to date with %s", remote)
		case git.PullDiverged:
			rt.Splog.Error("Local and remote histories have diverged; resolve this with git directly before syncing")
			return fmt.Errorf("sync aborted: histories diverged")
		}
	}

	if !opts.PullOnly {
		if err := rt.Runner.Push(cctx, remote); err != nil {
			return err
		}
		rt.Splog.Info("Pushed snapshots to %s", remote)
	}

	return nil
}
