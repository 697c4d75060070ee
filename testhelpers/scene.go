package testhelpers

import (
	"path/filepath"
	"testing"
)

// Scene is a test fixture with a target directory to seed and a bare
// repository that can serve as its remote.
type Scene struct {
	// Dir is the target directory. It does not exist until something creates it.
	Dir    string
	Remote *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a scene inside t.TempDir(). Cleanup is handled by the
// testing package.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	root := t.TempDir()

	// git prints resolved paths; keep comparisons stable on macOS where /var is a symlink
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	remote, err := NewBareRepo(filepath.Join(root, "remote.git"))
	if err != nil {
		t.Fatalf("Failed to create remote: %v", err)
	}

	scene := &Scene{
		Dir:    filepath.Join(root, "project"),
		Remote: remote,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}
	return scene
}

// Repo returns a handle on the repository at the scene's target directory.
func (s *Scene) Repo() *GitRepo {
	return OpenGitRepo(s.Dir)
}

// MissingRemoteURL returns a local path that is not a repository, so pushes
// to it fail quickly without touching the network.
func (s *Scene) MissingRemoteURL() string {
	return filepath.Join(filepath.Dir(s.Dir), "missing.git")
}

// PreexistingRepoSetup initializes the target directory as a repository with
// one commit on main.
func PreexistingRepoSetup(s *Scene) error {
	repo, err := NewGitRepo(s.Dir)
	if err != nil {
		return err
	}
	return repo.CreateChangeAndCommit("existing", "existing")
}
