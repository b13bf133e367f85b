// Package testhelpers provides shared test utilities: a scene system
// backed by real git repositories, a binary builder, and assertions.
package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Scene is a temporary directory holding an art file, an isolated config
// directory, and (after enlisting) a Git repository. Scenes never touch
// the real home directory.
type Scene struct {
	// Dir is the scene root; the sprite file starts here
	Dir string
	// SpritePath is the art file's current location
	SpritePath string
	// ConfigDir is the isolated spriteit config directory
	ConfigDir string
	// Repo is set once the scene contains a repository
	Repo *GitRepo
}

// NewScene creates a scene containing an un-enlisted sprite file.
// Cleanup is registered with t.Cleanup().
func NewScene(t *testing.T) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "spriteit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	scene := &Scene{
		Dir:        tmpDir,
		SpritePath: filepath.Join(tmpDir, SpriteFileName),
		ConfigDir:  filepath.Join(tmpDir, "config"),
	}

	if err := os.WriteFile(scene.SpritePath, []byte("ASEPRITE\x00v1 pixels"), 0600); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to write sprite file: %v", err)
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// NewEnlistedScene creates a scene where the sprite has already been
// enlisted with the spriteit binary.
func NewEnlistedScene(t *testing.T) *Scene {
	t.Helper()

	scene := NewScene(t)
	output, err := scene.CliCommandAndGetOutput("enlist", SpriteFileName)
	if err != nil {
		t.Fatalf("enlist failed: %v\n%s", err, output)
	}

	repoDir := scene.RepoDir()
	repo, err := WrapGitRepo(repoDir)
	if err != nil {
		t.Fatalf("enlist did not create a repository: %v", err)
	}
	if err := repo.configureUser(); err != nil {
		t.Fatalf("failed to configure git user: %v", err)
	}

	scene.Repo = repo
	scene.SpritePath = filepath.Join(repoDir, SpriteFileName)
	return scene
}

// RepoDir returns the folder enlist creates for the scene's sprite.
func (s *Scene) RepoDir() string {
	stem := SpriteFileName[:len(SpriteFileName)-len(filepath.Ext(SpriteFileName))]
	return filepath.Join(s.Dir, stem)
}

// CliCmd builds an exec.Cmd for the spriteit binary running in the scene
// directory with an isolated config dir and git environment.
func (s *Scene) CliCmd(args ...string) *exec.Cmd {
	cmd := exec.Command(GetSharedBinaryPath(), args...)
	cmd.Dir = s.Dir
	cmd.Env = append(os.Environ(),
		"SPRITEIT_CONFIG_DIR="+s.ConfigDir,
		"GIT_CONFIG_GLOBAL=/dev/null",
		"GIT_CONFIG_COUNT=1",
		"GIT_CONFIG_KEY_0=init.defaultBranch",
		"GIT_CONFIG_VALUE_0=main",
		"GIT_AUTHOR_NAME=Test Artist",
		"GIT_AUTHOR_EMAIL=artist@example.com",
		"GIT_COMMITTER_NAME=Test Artist",
		"GIT_COMMITTER_EMAIL=artist@example.com",
	)
	return cmd
}

// CliCommand runs a spriteit command in the scene and returns an error if
// it fails.
func (s *Scene) CliCommand(args ...string) error {
	return s.CliCmd(args...).Run()
}

// CliCommandAndGetOutput runs a spriteit command in the scene and returns
// its combined output.
func (s *Scene) CliCommandAndGetOutput(args ...string) (string, error) {
	output, err := s.CliCmd(args...).CombinedOutput()
	return string(output), err
}
