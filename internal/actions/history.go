package actions

import (
	"context"
	"fmt"

	"spriteit.dev/spriteit/internal/git"
	"spriteit.dev/spriteit/internal/output"
	"spriteit.dev/spriteit/internal/runtime"
	"spriteit.dev/spriteit/internal/tui"
	"spriteit.dev/spriteit/internal/utils"
)

// HistoryOptions configures the history action
type HistoryOptions struct {
	// Limit caps how many snapshots are listed; zero means the user
	// config's history_limit
	Limit int
	// Plain forces the non-interactive listing
	Plain bool
	// NoOpen stops the interactive browser from opening a selection
	NoOpen bool
}

// HistoryAction lists snapshots. In an interactive terminal it opens a
// browser; selecting an entry peeks at that snapshot.
func HistoryAction(cctx context.Context, rt *runtime.Context, opts HistoryOptions) error {
	repo, err := git.OpenRepository(rt.Location.Root)
	if err != nil {
		return err
	}

	if !repo.HasCommits() {
		rt.Splog.Info("No snapshots yet.")
		rt.Splog.Tip("Run 'spriteit snapshot' to create the first one")
		return nil
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = rt.User.HistoryLimit
	}

	commits, err := repo.History(limit)
	if err != nil {
		return err
	}

	if opts.Plain || !utils.IsInteractive() {
		for _, commit := range commits {
			rt.Splog.Info("%s  %s  %s  %s",
				output.Sha(commit.Short),
				commit.When.Format("2006-01-02 15:04"),
				commit.Subject,
				output.Dim(commit.Author))
		}
		return nil
	}

	rt.Splog.SetQuiet(true)
	selected, err := tui.SelectCommit(commits)
	rt.Splog.SetQuiet(false)
	if err != nil {
		return fmt.Errorf("history browser failed: %w", err)
	}
	if selected == nil {
		return nil
	}

	return PeekAction(cctx, rt, PeekOptions{
		Revision: selected.SHA,
		NoOpen:   opts.NoOpen,
	})
}
