package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	spriteiterrors "spriteit.dev/spriteit/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands. Network
// operations (fetch, pull, push) can legitimately take a while.
const DefaultCommandTimeout = 5 * time.Minute

// Runner executes git commands in a repository's working directory
type Runner struct {
	workingDir string
}

// NewRunner creates a Runner rooted at the given directory. An empty
// directory means "wherever the process happens to be", which is only
// appropriate before a repository has been located.
func NewRunner(workingDir string) *Runner {
	return &Runner{workingDir: workingDir}
}

// WorkingDir returns the directory commands run in
func (r *Runner) WorkingDir() string {
	return r.workingDir
}

// Run executes a git command and returns its trimmed stdout
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	out, err := r.runInternal(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// RunLines executes a git command and returns stdout split into lines.
// An empty stdout yields an empty (non-nil) slice.
func (r *Runner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RunRaw executes a git command and returns stdout untrimmed
func (r *Runner) RunRaw(ctx context.Context, args ...string) (string, error) {
	out, err := r.runInternal(ctx, args...)
	return string(out), err
}

// RunBytes executes a git command and returns stdout as raw bytes.
// Required for `git show` on binary file content, which must not be
// trimmed or string-converted lossily.
func (r *Runner) RunBytes(ctx context.Context, args ...string) ([]byte, error) {
	return r.runInternal(ctx, args...)
}

// RunInteractive executes a git command with stdin/stdout/stderr connected
// to the terminal. Used by the passthrough command.
func (r *Runner) RunInteractive(args ...string) error {
	cmd := exec.Command("git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (r *Runner) runInternal(ctx context.Context, args ...string) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return nil, spriteiterrors.NewGitCommandError("git", args, stdout.String(), stderr.String(), err)
	}
	return stdout.Bytes(), nil
}

// RunInDir executes a single git command in a specific directory without
// constructing a Runner. Used before a repository has been located.
func RunInDir(ctx context.Context, dir string, args ...string) (string, error) {
	return NewRunner(dir).Run(ctx, args...)
}
