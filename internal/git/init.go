package git

import (
	"context"
	"fmt"
)

// InitRepo initializes a new git repository in dir
func InitRepo(ctx context.Context, dir string) error {
	if _, err := RunInDir(ctx, dir, "init"); err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	return nil
}

// IsRepository reports whether dir is inside a git working tree
func IsRepository(ctx context.Context, dir string) bool {
	out, err := RunInDir(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}
