package actions

import (
	"context"

	"spriteit.dev/spriteit/internal/git"
	"spriteit.dev/spriteit/internal/output"
	"spriteit.dev/spriteit/internal/runtime"
)

// StatusAction reports the working tree state in plain language
func StatusAction(cctx context.Context, rt *runtime.Context) error {
	status, err := rt.Runner.GetStatus(cctx)
	if err != nil {
		return err
	}

	rt.Splog.Info("Repository: %s", output.Path(rt.Location.Root))
	if rt.Location.Linked {
		rt.Splog.Info("  (linked worktree, git directory at %s)", rt.Location.GitDir)
	}
	if rt.Marker != nil && rt.Marker.File != "" {
		rt.Splog.Info("Enlisted file: %s", output.Bold(rt.Marker.File))
	}

	if status.Clean() {
		rt.Splog.Info("Everything is saved (%s)", output.Success("clean"))
	} else {
		rt.Splog.Info("Unsaved changes: %s", output.Highlight(status.Describe()))
		rt.Splog.Tip("Run 'spriteit snapshot' to save them")
	}

	if repo, err := git.OpenRepository(rt.Location.Root); err == nil {
		if branch, err := repo.CurrentBranch(); err == nil && branch != "" {
			rt.Splog.Info("On branch %s", branch)
		}
	}

	ahead, behind, hasUpstream, err := rt.Runner.AheadBehind(cctx)
	if err != nil {
		return err
	}
	if hasUpstream {
		switch {
		case ahead > 0 && behind > 0:
			rt.Splog.Warn("Local and remote have diverged: %d to push, %d to pull", ahead, behind)
		case ahead > 0:
			rt.Splog.Info("%d snapshot(s) not yet pushed", ahead)
		case behind > 0:
			rt.Splog.Info("%d snapshot(s) available to pull", behind)
		default:
			rt.Splog.Info("In sync with remote")
		}
	}

	return nil
}
