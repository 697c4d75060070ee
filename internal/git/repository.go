package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
)

// Signature identifies the author of a commit. Values are used verbatim.
type Signature struct {
	Name  string
	Email string
}

// Repository wraps a go-git repository rooted at a working tree
type Repository struct {
	*git.Repository
	path   string
	runner *CommandRunner
}

// InitRepository creates a repository at path, or opens the one already there
// the way `git init` re-initializes. created reports which happened. A
// directory that exists but cannot be read as a repository is an error.
func InitRepository(path string) (repo *Repository, created bool, err error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to resolve path: %w", err)
	}
	if err := os.MkdirAll(absPath, 0o755); err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", absPath, err)
	}

	r, err := git.PlainInitWithOptions(absPath, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	switch {
	case err == nil:
		created = true
	case errors.Is(err, git.ErrRepositoryAlreadyExists):
		r, err = git.PlainOpen(absPath)
		if err != nil {
			return nil, false, fmt.Errorf("existing repository at %s is unusable: %w", absPath, err)
		}
	default:
		return nil, false, fmt.Errorf("failed to initialize repository at %s: %w", absPath, err)
	}

	return newRepository(r, absPath), created, nil
}

func newRepository(r *git.Repository, absPath string) *Repository {
	return &Repository{
		Repository: r,
		path:       absPath,
		// never block on a credential prompt
		runner: NewCommandRunner(absPath, "GIT_TERMINAL_PROMPT=0"),
	}
}

// Path returns the root of the working tree
func (r *Repository) Path() string {
	return r.path
}

// StageAll stages every file in the working tree, including untracked ones
func (r *Repository) StageAll() error {
	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// Commit records the index as a new commit on HEAD. Empty commits are allowed.
func (r *Repository) Commit(message string, author Signature) (plumbing.Hash, error) {
	wt, err := r.Worktree()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to get worktree: %w", err)
	}

	sig := &object.Signature{
		Name:  author.Name,
		Email: author.Email,
		When:  time.Now(),
	}
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: true,
	})
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to commit: %w", err)
	}
	return hash, nil
}

// HeadCommit returns the commit HEAD points at
func (r *Repository) HeadCommit() (*object.Commit, error) {
	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD: %w", err)
	}
	commit, err := r.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit: %w", err)
	}
	return commit, nil
}

// GetCurrentBranch returns the current branch name
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is not on a branch")
	}

	return head.Name().Short(), nil
}

// GetBranchNames returns all local branch names, sorted
func (r *Repository) GetBranchNames() ([]string, error) {
	branches, err := r.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var names []string
	err = branches.ForEach(func(ref *plumbing.Reference) error {
		if ref.Name().IsBranch() {
			names = append(names, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Strings(names)
	return names, nil
}

// BranchExists reports whether a local branch exists
func (r *Repository) BranchExists(name string) (bool, error) {
	_, err := r.Reference(plumbing.NewBranchReferenceName(name), false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read branch %s: %w", name, err)
	}
	return true, nil
}

// SetBranch points branch name at hash, creating it if needed. Any previous
// tip is overwritten.
func (r *Repository) SetBranch(name string, hash plumbing.Hash) (created bool, err error) {
	exists, err := r.BranchExists(name)
	if err != nil {
		return false, err
	}
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
	if err := r.Storer.SetReference(ref); err != nil {
		return false, fmt.Errorf("failed to update branch %s: %w", name, err)
	}
	return !exists, nil
}

// CheckoutBranch checks out an existing branch
func (r *Repository) CheckoutBranch(name string) error {
	exists, err := r.BranchExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return seederrors.NewBranchNotFoundError(name)
	}

	wt, err := r.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := wt.Checkout(&git.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(name)}); err != nil {
		return fmt.Errorf("failed to checkout branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch force-deletes a local branch and its config section. Merge
// state is not checked.
func (r *Repository) DeleteBranch(name string) error {
	exists, err := r.BranchExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return seederrors.NewBranchNotFoundError(name)
	}

	if err := r.Storer.RemoveReference(plumbing.NewBranchReferenceName(name)); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	if err := r.Repository.DeleteBranch(name); err != nil && !errors.Is(err, git.ErrBranchNotFound) {
		return fmt.Errorf("failed to delete config for branch %s: %w", name, err)
	}
	return nil
}

// RemoteURL returns the first URL of the named remote
func (r *Repository) RemoteURL(name string) (string, error) {
	remote, err := r.Remote(name)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", name, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", nil
	}
	return urls[0], nil
}

// EnsureRemote points the named remote at url, creating it if it does not exist
func (r *Repository) EnsureRemote(name, url string) (created bool, err error) {
	if url == "" {
		return false, fmt.Errorf("remote %s needs a URL", name)
	}

	_, err = r.Remote(name)
	switch {
	case errors.Is(err, git.ErrRemoteNotFound):
		_, err = r.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
		if err != nil {
			return false, fmt.Errorf("failed to create remote %s: %w", name, err)
		}
		return true, nil
	case err != nil:
		return false, fmt.Errorf("failed to get remote %s: %w", name, err)
	}

	cfg, err := r.Config()
	if err != nil {
		return false, fmt.Errorf("failed to read config: %w", err)
	}
	cfg.Remotes[name].URLs = []string{url}
	if err := r.SetConfig(cfg); err != nil {
		return false, fmt.Errorf("failed to update remote %s: %w", name, err)
	}
	return false, nil
}
