package actions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spriteit.dev/spriteit/internal/output"
	"spriteit.dev/spriteit/internal/runtime"
	"spriteit.dev/spriteit/internal/utils"
)

// PeekOptions configures the peek action
type PeekOptions struct {
	// Revision names the snapshot to look at
	Revision string
	// File overrides the enlisted file recorded in the marker
	File string
	// NoOpen writes the temp copy without launching the OS opener
	NoOpen bool
}

// PeekAction extracts the enlisted file as it was at a revision into a
// read-only temp copy and opens it. The working tree is never touched.
func PeekAction(cctx context.Context, rt *runtime.Context, opts PeekOptions) error {
	rel, err := rt.TargetRelPath(opts.File)
	if err != nil {
		return err
	}
	if rel == "" {
		return fmt.Errorf("this repository has no enlisted file recorded; pass the file to peek at")
	}

	sha, err := rt.Runner.ResolveRevision(cctx, opts.Revision)
	if err != nil {
		return err
	}

	if !rt.Runner.FileExistsAt(cctx, sha, rel) {
		return fmt.Errorf("%s does not exist in snapshot %s", rel, opts.Revision)
	}

	data, err := rt.Runner.ShowFileAt(cctx, sha, rel)
	if err != nil {
		return err
	}

	base := filepath.Base(rel)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	tmpFile, err := os.CreateTemp("", fmt.Sprintf("spriteit-%s-%s-*%s", stem, sha[:7], ext))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Read-only so an absent-minded edit cannot masquerade as the working file
	if err := os.Chmod(tmpFile.Name(), 0444); err != nil {
		rt.Splog.Warn("Could not mark the copy read-only: %v", err)
	}

	rt.Splog.Info("Snapshot %s of %s written to %s",
		output.Sha(sha[:7]), output.Bold(base), output.Path(tmpFile.Name()))

	if !opts.NoOpen {
		if err := utils.OpenFile(tmpFile.Name(), rt.User.OpenCommand); err != nil {
			rt.Splog.Warn("Could not open the copy automatically: %v", err)
		}
	}

	return nil
}
