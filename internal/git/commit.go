package git

import (
	"context"
	"fmt"
)

// StageAll stages all changes including untracked files
func (r *Runner) StageAll(ctx context.Context) error {
	if _, err := r.Run(ctx, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %w", err)
	}
	return nil
}

// StageFile stages a single file
func (r *Runner) StageFile(ctx context.Context, relPath string) error {
	if _, err := r.Run(ctx, "add", "--", relPath); err != nil {
		return fmt.Errorf("failed to stage %s: %w", relPath, err)
	}
	return nil
}

// Commit creates a commit with the given message
func (r *Runner) Commit(ctx context.Context, message string) error {
	if _, err := r.Run(ctx, "commit", "-m", message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CommitCount returns the number of commits reachable from HEAD
func (r *Runner) CommitCount(ctx context.Context) (int, error) {
	out, err := r.Run(ctx, "rev-list", "--count", "HEAD")
	if err != nil {
		return 0, fmt.Errorf("failed to count commits: %w", err)
	}
	var count int
	if _, err := fmt.Sscanf(out, "%d", &count); err != nil {
		return 0, fmt.Errorf("failed to parse commit count: %w", err)
	}
	return count, nil
}

// HeadSHA returns the SHA of HEAD
func (r *Runner) HeadSHA(ctx context.Context) (string, error) {
	out, err := r.Run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return out, nil
}
