package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spriteit.dev/spriteit/internal/config"
	spriteiterrors "spriteit.dev/spriteit/internal/errors"
	"spriteit.dev/spriteit/internal/git"
	"spriteit.dev/spriteit/internal/output"
	"spriteit.dev/spriteit/internal/runtime"
)

// defaultIgnoreFile keeps editor droppings out of snapshots
const defaultIgnoreFile = `# Editor backup and swap files
*~
*.bak
.DS_Store
Thumbs.db
`

// EnlistOptions configures the enlist action
type EnlistOptions struct {
	// FilePath is the file to put under version control
	FilePath string
	// Here initializes the repository in the file's current directory
	// instead of moving the file into its own folder
	Here bool
	// NoRemember skips recording the new folder in the user config
	NoRemember bool
}

// EnlistAction moves a file into its own folder, initializes a git
// repository there, and creates the initial commit. Each step's failure
// leaves a precisely reported state; the only rollback attempted is
// moving the file back and removing the created folder while it is still
// empty.
func EnlistAction(cctx context.Context, rt *runtime.Context, opts EnlistOptions) error {
	filePath, err := filepath.Abs(opts.FilePath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("%s: %w (save the file first)", opts.FilePath, spriteiterrors.ErrFileMissing)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", opts.FilePath)
	}

	if location, err := git.Discover(filePath); err == nil {
		return fmt.Errorf("%s is already inside the repository at %s: %w",
			opts.FilePath, location.Root, spriteiterrors.ErrAlreadyInRepository)
	}

	base := filepath.Base(filePath)
	parent := filepath.Dir(filePath)

	var dir string
	if opts.Here {
		dir = parent
	} else {
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		dir = filepath.Join(parent, stem)

		if _, err := os.Stat(dir); err == nil {
			return fmt.Errorf("cannot enlist %s: %s already exists", base, dir)
		}
		if err := os.Mkdir(dir, 0750); err != nil {
			return spriteiterrors.NewEnlistError(spriteiterrors.EnlistStageMove, filePath, dir, err)
		}
		if err := os.Rename(filePath, filepath.Join(dir, base)); err != nil {
			// The folder is still empty, removing it cannot lose anything
			_ = os.Remove(dir)
			return spriteiterrors.NewEnlistError(spriteiterrors.EnlistStageMove, filePath, dir, err)
		}
	}

	if err := git.InitRepo(cctx, dir); err != nil {
		if !opts.Here {
			// Best-effort rollback: put the file back and remove the
			// folder once it is empty again
			if moveErr := os.Rename(filepath.Join(dir, base), filePath); moveErr == nil {
				_ = os.Remove(dir)
			}
		}
		return spriteiterrors.NewEnlistError(spriteiterrors.EnlistStageInit, filePath, dir, err)
	}

	ignorePath := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(ignorePath); os.IsNotExist(err) {
		if err := os.WriteFile(ignorePath, []byte(defaultIgnoreFile), 0644); err != nil {
			rt.Splog.Warn("Could not write .gitignore: %v", err)
		}
	}

	runner := git.NewRunner(dir)
	if err := runner.StageAll(cctx); err != nil {
		return spriteiterrors.NewEnlistError(spriteiterrors.EnlistStageCommit, filePath, dir, err)
	}
	if err := runner.Commit(cctx, fmt.Sprintf("Enlist %s", base)); err != nil {
		return spriteiterrors.NewEnlistError(spriteiterrors.EnlistStageCommit, filePath, dir, err)
	}

	location, err := git.Discover(dir)
	if err == nil {
		marker := &config.Marker{File: base, EnlistedAt: time.Now()}
		if err := config.WriteMarker(location.GitDir, marker); err != nil {
			rt.Splog.Warn("Repository created but the marker could not be written: %v", err)
		}
	}

	sha, err := runner.HeadSHA(cctx)
	if err == nil && len(sha) >= 7 {
		sha = sha[:7]
	}

	rt.Splog.Info("Enlisted %s in %s", output.Bold(base), output.Path(dir))
	rt.Splog.Info("Initial snapshot %s created", output.Sha(sha))

	if !opts.NoRemember {
		rt.User.RememberedRepo = dir
		if err := rt.User.Save(); err != nil {
			// The repository is fully created at this point; only the
			// convenience lookup is lost
			rt.Splog.Warn("Snapshot committed, but the folder could not be remembered: %v", err)
		}
	}

	return nil
}
