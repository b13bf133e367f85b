package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"spriteit.dev/spriteit/internal/git"
	"spriteit.dev/spriteit/internal/output"
	"spriteit.dev/spriteit/internal/runtime"
	"spriteit.dev/spriteit/internal/utils"
)

// SnapshotOptions configures the snapshot action
type SnapshotOptions struct {
	// Message is the commit message; empty means prompt (interactive) or
	// use a timestamped default
	Message string
	// File limits the snapshot to one file instead of the whole tree
	File string
	// NoInteractive suppresses the message prompt
	NoInteractive bool
}

// SnapshotAction commits the current state of the enlisted file. Running
// it twice without an intervening change is not an error; the second run
// simply reports that there is nothing new.
func SnapshotAction(cctx context.Context, rt *runtime.Context, opts SnapshotOptions) error {
	rel := ""
	if opts.File != "" {
		var err error
		rel, err = rt.TargetRelPath(opts.File)
		if err != nil {
			return err
		}
	}

	// The clean check must match the staging scope: with a file argument,
	// changes elsewhere in the tree do not count
	var status git.Status
	var err error
	if rel != "" {
		status, err = rt.Runner.GetFileStatus(cctx, rel)
	} else {
		status, err = rt.Runner.GetStatus(cctx)
	}
	if err != nil {
		return err
	}
	if status.Clean() {
		rt.Splog.Info("Nothing new to snapshot; everything is already saved.")
		return nil
	}

	message := opts.Message
	if message == "" {
		message = "Snapshot " + time.Now().Format("2006-01-02 15:04")
		if !opts.NoInteractive && utils.IsInteractive() {
			prompt := &survey.Input{
				Message: "Describe this snapshot",
				Default: message,
			}
			if err := survey.AskOne(prompt, &message); err != nil {
				return fmt.Errorf("canceled")
			}
		}
	}

	if rel != "" {
		if err := rt.Runner.StageFile(cctx, rel); err != nil {
			return err
		}
	} else {
		if err := rt.Runner.StageAll(cctx); err != nil {
			return err
		}
	}

	if err := rt.Runner.Commit(cctx, message); err != nil {
		return err
	}

	sha, err := rt.Runner.HeadSHA(cctx)
	if err == nil && len(sha) >= 7 {
		sha = sha[:7]
	}
	rt.Splog.Info("Snapshot %s created (%s)", output.Sha(sha), status.Describe())
	return nil
}
