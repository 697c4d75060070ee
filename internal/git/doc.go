// Package git provides low-level Git operations.
//
// Repository state (init, staging, commits, branch refs, checkout, remote
// configuration) goes through go-git. Pushes and config lookups shell out to
// the git binary so the user's credential helpers and global config apply.
//
// This package should be the only place where git is touched directly.
package git
