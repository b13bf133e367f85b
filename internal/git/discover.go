package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	spriteiterrors "spriteit.dev/spriteit/internal/errors"
)

// Location describes a discovered repository.
type Location struct {
	// Root is the working tree root, the directory containing the .git entry
	Root string
	// GitDir is the actual git directory. Usually Root/.git, but a linked
	// worktree or submodule points elsewhere via a gitdir file.
	GitDir string
	// Linked is true when the .git entry was a gitdir pointer file rather
	// than a real directory
	Linked bool
}

// Discover walks parent directories from start until it finds a .git
// entry. A .git directory marks a repository root. A .git regular file is
// a worktree or submodule indicator; its gitdir line is followed so the
// caller still gets a usable git directory.
//
// Returns ErrNotInRepository when the walk reaches the filesystem root
// without finding anything.
func Discover(start string) (*Location, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	// If start is a file, begin from its directory
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		entry := filepath.Join(dir, ".git")
		info, err := os.Stat(entry)
		if err == nil {
			if info.IsDir() {
				return &Location{Root: dir, GitDir: entry}, nil
			}
			gitDir, err := readGitDirPointer(entry)
			if err != nil {
				return nil, err
			}
			return &Location{Root: dir, GitDir: gitDir, Linked: true}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, spriteiterrors.ErrNotInRepository
		}
		dir = parent
	}
}

// readGitDirPointer parses a .git file of the form "gitdir: <path>".
// Relative paths are resolved against the file's directory.
func readGitDirPointer(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read .git file: %w", err)
	}

	line := strings.TrimSpace(string(data))
	target, ok := strings.CutPrefix(line, "gitdir:")
	if !ok {
		return "", fmt.Errorf("malformed .git file at %s", path)
	}

	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return filepath.Clean(target), nil
}
