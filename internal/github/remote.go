package github

import (
	"fmt"
	"strings"
)

// RepoInfo contains parsed information from a git remote URL
type RepoInfo struct {
	Hostname string
	Owner    string
	Repo     string
}

// FullName returns owner/repo
func (r *RepoInfo) FullName() string {
	return r.Owner + "/" + r.Repo
}

// ParseGitHubRemoteURL parses a git remote URL and extracts hostname, owner, and repo.
// Local paths and URLs without an owner/repo path are rejected.
// Examples:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - ssh://git@github.company.com/owner/repo.git
func ParseGitHubRemoteURL(remoteURL string) (*RepoInfo, error) {
	remoteURL = strings.TrimSpace(remoteURL)
	remoteURL = strings.TrimSuffix(remoteURL, "/")
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	var hostname, path string

	if strings.Contains(remoteURL, "@") {
		// SSH format: git@hostname:owner/repo or ssh://git@hostname/owner/repo
		parts := strings.SplitN(remoteURL, "@", 2)
		hostAndPath := parts[1]

		if host, rest, ok := strings.Cut(hostAndPath, ":"); ok && !strings.Contains(host, "/") {
			hostname = host
			path = rest
		} else {
			host, rest, ok := strings.Cut(hostAndPath, "/")
			if !ok {
				return nil, fmt.Errorf("invalid SSH remote URL: missing path")
			}
			hostname = host
			path = rest
		}
	} else {
		var ok bool
		rest := remoteURL
		for _, scheme := range []string{"https://", "http://", "git://"} {
			if strings.HasPrefix(rest, scheme) {
				rest = strings.TrimPrefix(rest, scheme)
				ok = true
				break
			}
		}
		if !ok {
			return nil, fmt.Errorf("unsupported remote URL %q", remoteURL)
		}
		hostname, path, _ = strings.Cut(rest, "/")
	}

	// drop an explicit port
	if host, _, ok := strings.Cut(hostname, ":"); ok {
		hostname = host
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if hostname == "" || len(segments) < 2 || segments[len(segments)-2] == "" || segments[len(segments)-1] == "" {
		return nil, fmt.Errorf("failed to parse hostname, owner, or repo from remote URL %q", remoteURL)
	}

	return &RepoInfo{
		Hostname: hostname,
		Owner:    segments[len(segments)-2],
		Repo:     segments[len(segments)-1],
	}, nil
}
