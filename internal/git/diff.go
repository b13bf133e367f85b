package git

import (
	"context"
	"fmt"
	"strings"
)

// DiffFile returns the diff of a file between a revision and the working
// tree. An empty revision diffs against HEAD. Binary files have no
// readable patch body, so they are reported in --stat form instead.
func (r *Runner) DiffFile(ctx context.Context, revision, relPath string) (string, error) {
	base := revision
	if base == "" {
		base = "HEAD"
	}

	pathArg := relPath
	if pathArg == "" {
		pathArg = "."
	}

	out, err := r.RunRaw(ctx, "diff", base, "--", pathArg)
	if err != nil {
		return "", fmt.Errorf("failed to diff against %s: %w", base, err)
	}

	if strings.Contains(out, "Binary files") {
		stat, err := r.RunRaw(ctx, "diff", "--stat", base, "--", pathArg)
		if err != nil {
			return "", fmt.Errorf("failed to diff against %s: %w", base, err)
		}
		return stat, nil
	}
	return out, nil
}
