package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seedrepo",
		Short: "Seedrepo creates a directory structure from a file and publishes it as a new git repository",
		Long: `Seedrepo creates a directory structure from a JSON, YAML or TOML description,
commits it to a new git repository on a single dev branch, and pushes it to origin.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Print debug output")

	rootCmd.AddCommand(newApplyCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
