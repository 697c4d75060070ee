package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// GitRepo is a git working tree or bare repository used by tests. All
// commands run with the global git config disabled.
type GitRepo struct {
	Dir  string
	Bare bool
}

// NewGitRepo initializes a repository in dir with 'git init' on branch main and
// a test identity.
func NewGitRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = gitEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %s: %w", string(output), err)
	}

	repo := &GitRepo{Dir: dir}
	if err := repo.RunGitCommand("config", "user.name", "Test User"); err != nil {
		return nil, err
	}
	if err := repo.RunGitCommand("config", "user.email", "test@example.com"); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewBareRepo creates a bare repository at dir to act as a push target.
func NewBareRepo(dir string) (*GitRepo, error) {
	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "init", "--bare", dir)
	cmd.Env = gitEnv()
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("failed to create bare repo: %s: %w", string(output), err)
	}
	return &GitRepo{Dir: dir, Bare: true}, nil
}

// OpenGitRepo wraps an existing repository directory, for example one created
// by the code under test.
func OpenGitRepo(dir string) *GitRepo {
	return &GitRepo{Dir: dir}
}

func gitEnv() []string {
	return append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null", "GIT_TERMINAL_PROMPT=0")
}

// RunGitCommand executes a git command in the repository directory.
func (r *GitRepo) RunGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git %s failed: %s: %w", strings.Join(args, " "), string(output), err)
	}
	return nil
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed stdout.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = gitEnv()
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChangeAndCommit writes textValue to <prefix>_test.txt and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	fileName := "test.txt"
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	if err := os.WriteFile(filepath.Join(r.Dir, fileName), []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := r.RunGitCommand("add", "."); err != nil {
		return err
	}
	return r.RunGitCommand("commit", "-m", textValue)
}

// CreateBranch creates a new branch without checking it out.
func (r *GitRepo) CreateBranch(name string) error {
	return r.RunGitCommand("branch", name)
}

// AddRemote adds a remote named name pointing at url.
func (r *GitRepo) AddRemote(name, url string) error {
	return r.RunGitCommand("remote", "add", name, url)
}

// CurrentBranchName returns the name of the current branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.RunGitCommandAndGetOutput("branch", "--show-current")
}

// GetLocalBranches returns every branch under refs/heads, sorted.
func (r *GitRepo) GetLocalBranches() ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("for-each-ref", "refs/heads/", "--format=%(refname:short)", "--sort=refname")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// GetRevision returns the SHA of a revision.
func (r *GitRepo) GetRevision(rev string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", rev)
}

// GetCommitCount returns the number of commits reachable from rev.
func (r *GitRepo) GetCommitCount(rev string) (int, error) {
	output, err := r.RunGitCommandAndGetOutput("rev-list", "--count", rev)
	if err != nil {
		return 0, err
	}
	var count int
	if _, err := fmt.Sscanf(output, "%d", &count); err != nil {
		return 0, fmt.Errorf("failed to parse commit count: %w", err)
	}
	return count, nil
}

// GetCommitField formats one field of a commit with a git log placeholder such as %an.
func (r *GitRepo) GetCommitField(rev, placeholder string) (string, error) {
	return r.RunGitCommandAndGetOutput("log", "-1", "--format="+placeholder, rev)
}

// ListTrackedFiles returns the paths recorded in the tree of rev, sorted.
func (r *GitRepo) ListTrackedFiles(rev string) ([]string, error) {
	output, err := r.RunGitCommandAndGetOutput("ls-tree", "-r", "--name-only", rev)
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// GetConfig reads a git config value from the repository.
func (r *GitRepo) GetConfig(key string) (string, error) {
	return r.RunGitCommandAndGetOutput("config", "--get", key)
}

// splitLines splits a string by newlines and returns non-empty lines.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
