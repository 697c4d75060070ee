package cli

import (
	"github.com/spf13/cobra"

	"seedrepo.dev/seedrepo/internal/actions"
	"seedrepo.dev/seedrepo/internal/cli/helpers"
	"seedrepo.dev/seedrepo/internal/runtime"
)

func newPreviewCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:     "preview <structure-file>",
		Aliases: []string{"p"},
		Short:   "Show the tree a structure file would create",
		Long: `Show the files and directories a structure file would create, without
touching disk.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: helpers.CompleteStructureFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.PreviewAction(ctx, actions.PreviewOptions{
					StructurePath: args[0],
					Root:          root,
				})
			})
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Label for the top of the tree")

	return cmd
}
