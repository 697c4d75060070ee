package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// SEEDREPO_LOG_FILE wins, then configured, then ~/.seedrepo/logs/seedrepo.log.
func GetLogFilePath(configured string) string {
	if customPath := os.Getenv("SEEDREPO_LOG_FILE"); customPath != "" {
		return customPath
	}
	if configured != "" {
		return configured
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "seedrepo.log"
	}
	return filepath.Join(homeDir, ".seedrepo", "logs", "seedrepo.log")
}
