package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"seedrepo.dev/seedrepo/internal/git"
)

// AuthorConfig is the default commit author
type AuthorConfig struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// UserConfig holds defaults for flags the user did not pass
type UserConfig struct {
	Author    AuthorConfig `json:"author"`
	Remote    string       `json:"remote,omitempty"`
	Structure string       `json:"structure,omitempty"`
	LogFile   string       `json:"logFile,omitempty"`
}

// GetConfigPath returns $SEEDREPO_CONFIG, or ~/.seedrepo/config.json
func GetConfigPath() string {
	if customPath := os.Getenv("SEEDREPO_CONFIG"); customPath != "" {
		return customPath
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".seedrepo", "config.json")
}

// LoadUserConfig reads the config at path. A missing file, or an empty path,
// yields an empty config.
func LoadUserConfig(path string) (*UserConfig, error) {
	if path == "" {
		return &UserConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &UserConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config UserConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// ResolveAuthor returns the configured author, filling missing fields from
// git's user.name and user.email as seen from runner.
func (c *UserConfig) ResolveAuthor(ctx context.Context, runner *git.CommandRunner) AuthorConfig {
	author := c.Author
	if author.Name == "" {
		if name, err := git.GetUserName(ctx, runner); err == nil {
			author.Name = name
		}
	}
	if author.Email == "" {
		if email, err := git.GetUserEmail(ctx, runner); err == nil {
			author.Email = email
		}
	}
	return author
}
