package runtime

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spriteit.dev/spriteit/internal/config"
	spriteiterrors "spriteit.dev/spriteit/internal/errors"
	"spriteit.dev/spriteit/internal/git"
	"spriteit.dev/spriteit/internal/output"
)

// Context provides access to the logger, user config, and (once located)
// the repository for the current invocation.
type Context struct {
	Splog *output.Splog
	User  *config.UserConfig

	// Populated by RequireRepo
	Location *git.Location
	Runner   *git.Runner
	Marker   *config.Marker
}

// NewContext loads the user config and creates the logger
func NewContext() (*Context, error) {
	user, err := config.LoadUserConfig()
	if err != nil {
		return nil, err
	}
	return &Context{
		Splog: output.NewSplog(),
		User:  user,
	}, nil
}

// RequireRepo locates the repository a command should operate on and
// populates Location, Runner, and Marker. The search order is: the
// explicit start path if given, then the current directory, then the
// remembered folder from the user config.
func (c *Context) RequireRepo(startPath string) error {
	if startPath != "" {
		return c.useRepoAt(startPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if err := c.useRepoAt(wd); err == nil {
		return nil
	}

	if c.User.RememberedRepo != "" {
		if err := c.useRepoAt(c.User.RememberedRepo); err == nil {
			return nil
		}
	}

	return spriteiterrors.ErrNotInRepository
}

func (c *Context) useRepoAt(path string) error {
	location, err := git.Discover(path)
	if err != nil {
		return err
	}

	marker, err := config.ReadMarker(location.GitDir)
	if err != nil {
		// A corrupt marker should not block git operations
		c.Splog.Debug("ignoring unreadable marker: %v", err)
		marker = nil
	}

	c.Location = location
	c.Runner = git.NewRunner(location.Root)
	c.Marker = marker
	return nil
}

// TargetRelPath resolves which file a command should operate on, relative
// to the repository root: an explicit argument wins, then the enlisted
// file recorded in the marker, then empty meaning "the whole tree".
func (c *Context) TargetRelPath(fileArg string) (string, error) {
	if c.Location == nil {
		return "", spriteiterrors.ErrNotInRepository
	}

	if fileArg != "" {
		abs, err := filepath.Abs(fileArg)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path: %w", err)
		}
		rel, err := filepath.Rel(c.Location.Root, abs)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("%s is outside the repository at %s", fileArg, c.Location.Root)
		}
		return rel, nil
	}

	if c.Marker != nil && c.Marker.File != "" {
		return c.Marker.File, nil
	}
	return "", nil
}
