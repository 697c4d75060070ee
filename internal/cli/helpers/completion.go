// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"
)

// StructureFileExtensions are the extensions structure files are read from
var StructureFileExtensions = []string{"json", "yaml", "yml", "toml"}

// CompleteStructureFiles is a helper for cobra.ValidArgsFunction and RegisterFlagCompletionFunc
// that completes structure file names.
func CompleteStructureFiles(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return StructureFileExtensions, cobra.ShellCompDirectiveFilterFileExt
}

// CompleteDirectories completes directory names only
func CompleteDirectories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
