package helpers

import (
	"github.com/spf13/cobra"

	"seedrepo.dev/seedrepo/internal/config"
	"seedrepo.dev/seedrepo/internal/github"
	"seedrepo.dev/seedrepo/internal/runtime"
	"seedrepo.dev/seedrepo/internal/tui"
)

// Run is a helper that provides a runtime context to a command's execution function.
// It loads the user config and opens the log file; the log file is closed when fn returns.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	cfg, err := config.LoadUserConfig(config.GetConfigPath())
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	splog, err := tui.NewSplogWithConfig(cmd.OutOrStdout(), tui.GetLogFilePath(cfg.LogFile), debug)
	if err != nil {
		splog = tui.NewSplogWithWriter(cmd.OutOrStdout(), debug)
		splog.Debug("file logging disabled: %v", err)
	}
	defer func() { _ = splog.Close() }()

	ctx := runtime.NewContext(cmd.Context(), splog)
	ctx.Config = cfg
	ctx.Diagnoser = github.NewInspector()
	return fn(ctx)
}
