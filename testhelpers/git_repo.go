package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// SpriteFileName is the art file scenes are built around. The content is
// arbitrary bytes; spriteit treats the file as opaque.
const SpriteFileName = "hero.aseprite"

// GitRepo drives a real git binary inside a test directory.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory
// using 'git init'.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.configureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

// WrapGitRepo wraps an existing repository directory (for example one
// created by the spriteit binary) so tests can inspect it.
func WrapGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		return nil, fmt.Errorf("%s is not a repository: %w", dir, err)
	}
	return repo, nil
}

func (r *GitRepo) configureUser() error {
	if err := r.RunGitCommand("config", "user.name", "Test Artist"); err != nil {
		return err
	}
	return r.RunGitCommand("config", "user.email", "artist@example.com")
}

// RunGitCommand executes a git command in the repository directory.
// Uses GIT_CONFIG_GLOBAL=/dev/null to avoid reading global config.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommandAndGetOutput executes a git command and returns its
// trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// WriteSprite writes content to the sprite file in the repository.
func (r *GitRepo) WriteSprite(content []byte) error {
	return os.WriteFile(filepath.Join(r.Dir, SpriteFileName), content, 0600)
}

// CommitAll stages everything and commits it.
func (r *GitRepo) CommitAll(message string) error {
	if err := r.RunGitCommand("add", "-A"); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", message)
}

// CommitCount returns the number of commits reachable from HEAD.
func (r *GitRepo) CommitCount() (int, error) {
	output, err := r.RunGitCommandAndGetOutput("rev-list", "--count", "HEAD")
	if err != nil {
		return 0, err
	}
	var count int
	if _, err := fmt.Sscanf(output, "%d", &count); err != nil {
		return 0, fmt.Errorf("failed to parse commit count: %w", err)
	}
	return count, nil
}

// HeadSHA returns the SHA of HEAD.
func (r *GitRepo) HeadSHA() (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", "HEAD")
}

// CurrentBranchName returns the name of the current branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandAndGetOutput("branch", "--show-current")
}

// ListCommitMessages returns the commit subjects on the current branch,
// newest first.
func (r *GitRepo) ListCommitMessages() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("log", "--format=%s")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// HasUncommittedChanges reports whether the working tree is dirty.
func (r *GitRepo) HasUncommittedChanges() (bool, error) {
	output, err := r.RunGitCommandAndGetOutput("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return output != "", nil
}

// ShowFileAt returns the raw content of a file at a revision.
func (r *GitRepo) ShowFileAt(revision, relPath string) ([]byte, error) {
	cmd := exec.Command("git", "show", fmt.Sprintf("%s:%s", revision, relPath))
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git show failed: %w", err)
	}
	return output, nil
}

// CreateBareRemote creates a bare git repository as a sibling directory
// and adds it as a remote. Returns the path to the bare repository.
func (r *GitRepo) CreateBareRemote(name string) (string, error) {
	bareDir := r.Dir + "-" + name + ".git"

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", "--bare", bareDir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to create bare repo: %w", err)
	}

	if err := r.RunGitCommand("remote", "add", name, bareDir); err != nil {
		return "", fmt.Errorf("failed to add remote: %w", err)
	}
	return bareDir, nil
}

// splitLines splits a string by newlines and returns non-empty lines.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
