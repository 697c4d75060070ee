package git

import (
	"context"
	"fmt"
)

// GetUserName returns the Git user's name from git config
func GetUserName(ctx context.Context, runner *CommandRunner) (string, error) {
	username, err := runner.Run(ctx, "config", "user.name")
	if err != nil {
		return "", fmt.Errorf("failed to get git user name: %w", err)
	}
	return username, nil
}

// GetUserEmail returns the Git user's email from git config
func GetUserEmail(ctx context.Context, runner *CommandRunner) (string, error) {
	email, err := runner.Run(ctx, "config", "user.email")
	if err != nil {
		return "", fmt.Errorf("failed to get git user email: %w", err)
	}
	return email, nil
}
