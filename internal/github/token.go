package github

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

const ghTimeout = 10 * time.Second

// GetToken gets a GitHub token from the environment or the gh CLI
func GetToken(ctx context.Context) (string, error) {
	for _, key := range []string{"GITHUB_TOKEN", "GH_TOKEN"} {
		if token := os.Getenv(key); token != "" {
			return token, nil
		}
	}

	if _, err := exec.LookPath("gh"); err != nil {
		return "", fmt.Errorf("no GitHub token in environment and gh CLI not found")
	}

	ctx, cancel := context.WithTimeout(ctx, ghTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "gh", "auth", "token")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to get GitHub token: %s: %w", strings.TrimSpace(stderr.String()), err)
	}

	token := strings.TrimSpace(stdout.String())
	if token == "" {
		return "", fmt.Errorf("empty GitHub token")
	}
	return token, nil
}
