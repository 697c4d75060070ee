// Package github inspects GitHub remotes so that failed pushes can be explained.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RepoStatus is what the API says about a remote repository
type RepoStatus int

const (
	// RepoStatusUnknown means the API could not answer
	RepoStatusUnknown RepoStatus = iota
	// RepoStatusExists means the repository exists and the token can read it
	RepoStatusExists
	// RepoStatusNotFound means the repository does not exist or is hidden from the token
	RepoStatusNotFound
	// RepoStatusForbidden means the token was rejected
	RepoStatusForbidden
)

func (s RepoStatus) String() string {
	switch s {
	case RepoStatusExists:
		return "exists"
	case RepoStatusNotFound:
		return "not found"
	case RepoStatusForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// RepositoryInfo is the subset of repository metadata used in diagnostics
type RepositoryInfo struct {
	FullName      string
	Private       bool
	CanPush       bool
	DefaultBranch string
}

// Client wraps the go-github client
type Client struct {
	gh *github.Client
}

// NewClient creates a GitHub client configured for the given hostname.
// Supports both github.com and GitHub Enterprise instances.
func NewClient(ctx context.Context, hostname, token string) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if hostname != "" && hostname != "github.com" {
		// REST API: https://hostname/api/v3/
		baseURL, err := url.Parse(fmt.Sprintf("https://%s/api/v3/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse base URL for hostname %s: %w", hostname, err)
		}
		uploadURL, err := url.Parse(fmt.Sprintf("https://%s/api/uploads/", hostname))
		if err != nil {
			return nil, fmt.Errorf("failed to parse upload URL for hostname %s: %w", hostname, err)
		}
		client.BaseURL = baseURL
		client.UploadURL = uploadURL
	}

	return &Client{gh: client}, nil
}

// WrapClient wraps an already configured go-github client
func WrapClient(client *github.Client) *Client {
	return &Client{gh: client}
}

// GetRepository looks up owner/repo. The status is set even when err is nil
// so callers can branch on it.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*RepositoryInfo, RepoStatus, error) {
	r, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		var errResp *github.ErrorResponse
		if errors.As(err, &errResp) && errResp.Response != nil {
			switch errResp.Response.StatusCode {
			case http.StatusNotFound:
				return nil, RepoStatusNotFound, nil
			case http.StatusUnauthorized, http.StatusForbidden:
				return nil, RepoStatusForbidden, nil
			}
		}
		return nil, RepoStatusUnknown, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}

	info := &RepositoryInfo{
		FullName:      r.GetFullName(),
		Private:       r.GetPrivate(),
		DefaultBranch: r.GetDefaultBranch(),
	}
	if perms := r.GetPermissions(); perms != nil {
		info.CanPush = perms["push"]
	}
	return info, RepoStatusExists, nil
}
