package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// BrowseFile asks for a file path with tab completion. Interrupting the
// prompt returns an empty path and no error.
func BrowseFile(message, defaultPath string) (string, error) {
	return browse(message, defaultPath, false)
}

// BrowseDirectory is BrowseFile restricted to directories
func BrowseDirectory(message, defaultPath string) (string, error) {
	return browse(message, defaultPath, true)
}

func browse(message, defaultPath string, dirsOnly bool) (string, error) {
	if interactiveDisabled() {
		return "", ErrInteractiveDisabled
	}

	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultPath,
		Suggest: func(toComplete string) []string {
			return completePath(toComplete, dirsOnly)
		},
	}
	err := survey.AskOne(prompt, &answer)
	if errors.Is(err, terminal.InterruptErr) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// completePath lists entries that extend toComplete. Directories end in a
// separator so completion can continue into them. Hidden entries are only
// offered when the typed prefix starts with a dot.
func completePath(toComplete string, dirsOnly bool) []string {
	dir, prefix := filepath.Split(toComplete)
	searchDir := dir
	if searchDir == "" {
		searchDir = "."
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil
	}

	var suggestions []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		switch {
		case entry.IsDir():
			suggestions = append(suggestions, dir+name+string(filepath.Separator))
		case !dirsOnly:
			suggestions = append(suggestions, dir+name)
		}
	}
	return suggestions
}
