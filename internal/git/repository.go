package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// Repository wraps a go-git repository for read-only inspection. All
// mutations go through Runner and the real git binary.
type Repository struct {
	*gogit.Repository
	root string
}

// OpenRepository opens the repository containing path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{
		Repository: repo,
		root:       worktree.Filesystem.Root(),
	}, nil
}

// Root returns the working tree root of the repository
func (r *Repository) Root() string {
	return r.root
}

// Commit describes one history entry
type Commit struct {
	SHA     string
	Short   string
	Subject string
	Author  string
	When    time.Time
}

// History returns up to limit commits reachable from HEAD, newest first.
// A limit of zero or less means no cap.
func (r *Repository) History(limit int) ([]Commit, error) {
	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}

	iter, err := r.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history: %w", err)
	}
	defer iter.Close()

	var commits []Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}
		sha := c.Hash.String()
		commits = append(commits, Commit{
			SHA:     sha,
			Short:   sha[:7],
			Subject: firstLine(c.Message),
			Author:  c.Author.Name,
			When:    c.Author.When,
		})
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("failed to walk history: %w", err)
	}

	return commits, nil
}

// CurrentBranch returns the current branch name, or empty when HEAD is
// detached.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}

// HasCommits reports whether the repository has at least one commit
func (r *Repository) HasCommits() bool {
	_, err := r.Head()
	return err == nil
}

func firstLine(message string) string {
	for i, ch := range message {
		if ch == '\n' {
			return message[:i]
		}
	}
	return message
}
