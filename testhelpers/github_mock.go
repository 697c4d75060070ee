package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-github/v62/github"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Repos maps "owner/repo" to the repository returned by GET /repos/{owner}/{repo}
	Repos map[string]*github.Repository
	// Statuses maps "owner/repo" to an error status code returned instead of a repository
	Statuses map[string]int
	// Requests counts the API calls the server has handled
	Requests atomic.Int32
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Repos:    make(map[string]*github.Repository),
		Statuses: make(map[string]int),
	}
}

// AddRepo registers a repository. push controls the push permission reported for the caller.
func (c *MockGitHubServerConfig) AddRepo(owner, repo string, push bool) {
	fullName := owner + "/" + repo
	c.Repos[fullName] = &github.Repository{
		Name:          github.String(repo),
		FullName:      github.String(fullName),
		Private:       github.Bool(true),
		DefaultBranch: github.String("main"),
		Permissions:   map[string]bool{"pull": true, "push": push},
	}
}

// NewMockGitHubServer creates an httptest server that mocks the repository endpoint
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/", func(w http.ResponseWriter, r *http.Request) {
		config.Requests.Add(1)
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		fullName := strings.Trim(strings.TrimPrefix(r.URL.Path, "/repos/"), "/")
		if status, ok := config.Statuses[fullName]; ok {
			writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
			return
		}
		if repo, ok := config.Repos[fullName]; ok {
			writeJSON(w, http.StatusOK, repo)
			return
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(func() { server.Close() })
	return server
}

// NewMockGitHubClient creates a GitHub client configured to use a mock server
func NewMockGitHubClient(t *testing.T, config *MockGitHubServerConfig) *github.Client {
	server := NewMockGitHubServer(t, config)
	client := github.NewClient(nil)
	baseURL, _ := url.Parse(server.URL + "/")
	client.BaseURL = baseURL
	client.UploadURL = baseURL
	return client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
