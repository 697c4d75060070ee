package github

import (
	"context"
	"fmt"
)

// TokenFunc supplies an API token
type TokenFunc func(ctx context.Context) (string, error)

// ClientFunc builds a client for a hostname
type ClientFunc func(ctx context.Context, hostname, token string) (*Client, error)

// Inspector explains push failures for remotes hosted on GitHub. It never
// fails: when it cannot learn anything it says nothing.
type Inspector struct {
	token     TokenFunc
	newClient ClientFunc
}

// NewInspector returns an Inspector that uses GetToken and NewClient
func NewInspector() *Inspector {
	return &Inspector{token: GetToken, newClient: NewClient}
}

// NewInspectorWith returns an Inspector with custom token and client sources
func NewInspectorWith(token TokenFunc, newClient ClientFunc) *Inspector {
	return &Inspector{token: token, newClient: newClient}
}

// Diagnose returns a one-line explanation of the state of the repository
// behind remoteURL, or "" if nothing useful can be said.
func (i *Inspector) Diagnose(ctx context.Context, remoteURL string) string {
	info, err := ParseGitHubRemoteURL(remoteURL)
	if err != nil {
		return ""
	}

	token, err := i.token(ctx)
	if err != nil {
		return ""
	}

	client, err := i.newClient(ctx, info.Hostname, token)
	if err != nil {
		return ""
	}

	repo, status, err := client.GetRepository(ctx, info.Owner, info.Repo)
	if err != nil {
		return ""
	}

	switch status {
	case RepoStatusNotFound:
		return fmt.Sprintf("%s was not found on %s. Create it first, or check the URL.", info.FullName(), info.Hostname)
	case RepoStatusForbidden:
		return fmt.Sprintf("The GitHub token was rejected when looking up %s.", info.FullName())
	case RepoStatusExists:
		if !repo.CanPush {
			return fmt.Sprintf("%s exists but your account does not have push access.", info.FullName())
		}
		return fmt.Sprintf("%s exists and is writable; check your git credentials for %s.", info.FullName(), info.Hostname)
	}
	return ""
}
