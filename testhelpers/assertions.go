// Package testhelpers provides testing utilities for seedrepo, including a
// scene fixture, git repository helpers, and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	want := append([]string(nil), expected...)
	sort.Strings(want)
	require.Equal(t, want, branches)
}

// ExpectCurrentBranch asserts which branch is checked out.
func ExpectCurrentBranch(t *testing.T, repo *GitRepo, expected string) {
	t.Helper()

	current, err := repo.CurrentBranchName()
	require.NoError(t, err, "Failed to read current branch")
	require.Equal(t, expected, current)
}

// ExpectRemoteBranch asserts that a bare repository holds branch at the given revision.
func ExpectRemoteBranch(t *testing.T, remote *GitRepo, branch, revision string) {
	t.Helper()

	sha, err := remote.GetRevision("refs/heads/" + branch)
	require.NoError(t, err, "branch %s missing on remote", branch)
	require.Equal(t, revision, sha)
}
