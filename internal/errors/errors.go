// Package errors provides sentinel errors and custom error types for the
// spriteit application. Use errors.Is() and errors.As() to check for
// specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotInRepository indicates that no enclosing git repository was found
	ErrNotInRepository = errors.New("not inside a repository")

	// ErrAlreadyInRepository indicates that a file is already under version control
	ErrAlreadyInRepository = errors.New("already inside a repository")

	// ErrNoRemote indicates that the repository has no remote configured
	ErrNoRemote = errors.New("no remote configured")

	// ErrRevisionNotFound indicates that a revision could not be resolved
	ErrRevisionNotFound = errors.New("revision not found")

	// ErrFileMissing indicates that the target file does not exist on disk
	ErrFileMissing = errors.New("file does not exist")
)

// RevisionNotFoundError represents an error when a revision cannot be resolved
type RevisionNotFoundError struct {
	Revision string
}

func (e *RevisionNotFoundError) Error() string {
	return fmt.Sprintf("revision %s does not exist in this repository", e.Revision)
}

// Is returns true if the target error is ErrRevisionNotFound
func (e *RevisionNotFoundError) Is(target error) bool {
	return target == ErrRevisionNotFound
}

// NewRevisionNotFoundError creates a new RevisionNotFoundError
func NewRevisionNotFoundError(revision string) *RevisionNotFoundError {
	return &RevisionNotFoundError{Revision: revision}
}

// Enlist stages, used by EnlistError to describe exactly how far the
// operation got before failing.
const (
	EnlistStageMove   = "move"
	EnlistStageInit   = "init"
	EnlistStageCommit = "commit"
)

// EnlistError reports a partial failure during enlist. The Stage field
// names the step that failed so the user knows what state their file is in:
// "move" means the file never left its original location, "init" means the
// file was moved but no repository was created, "commit" means the
// repository exists but holds no commit yet.
type EnlistError struct {
	Stage    string
	FilePath string
	Dir      string
	Err      error
}

func (e *EnlistError) Error() string {
	switch e.Stage {
	case EnlistStageMove:
		return fmt.Sprintf("could not move %s into %s; the file is still in its original location: %v", e.FilePath, e.Dir, e.Err)
	case EnlistStageInit:
		return fmt.Sprintf("%s was moved into %s but the repository could not be created: %v", e.FilePath, e.Dir, e.Err)
	case EnlistStageCommit:
		return fmt.Sprintf("a repository was created in %s but the initial commit failed: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("enlist failed: %v", e.Err)
}

func (e *EnlistError) Unwrap() error {
	return e.Err
}

// NewEnlistError creates a new EnlistError
func NewEnlistError(stage, filePath, dir string, err error) *EnlistError {
	return &EnlistError{Stage: stage, FilePath: filePath, Dir: dir, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
