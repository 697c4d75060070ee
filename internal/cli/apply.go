package cli

import (
	"github.com/spf13/cobra"

	"seedrepo.dev/seedrepo/internal/actions"
	"seedrepo.dev/seedrepo/internal/cli/helpers"
	"seedrepo.dev/seedrepo/internal/git"
	"seedrepo.dev/seedrepo/internal/runtime"
	"seedrepo.dev/seedrepo/internal/tui"
)

func newApplyCmd() *cobra.Command {
	var (
		opts          actions.SeedOptions
		browse        bool
		noInteractive bool
	)

	cmd := &cobra.Command{
		Use:     "apply",
		Aliases: []string{"a"},
		Short:   "Create the structure, commit it on dev, and push it to origin",
		Long: `Create every file and directory described by the structure file under the
target path, commit them as a new repository, leave a single dev branch, and
push it to the remote.

Inputs not given as flags come from the config file. The commit author falls
back to git's user.name and user.email. In a terminal, a form is shown for
any input that is still empty unless --no-interactive is given.

A failed push is reported but does not fail the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				opts = applyConfigDefaults(ctx, opts)

				if !noInteractive && tui.IsTTY() {
					var err error
					if opts, err = terminalPrompts.collect(opts, browse); err != nil {
						return err
					}
				}

				_, err := actions.SeedAction(ctx, opts)
				return err
			})
		},
	}

	cmd.Flags().StringVar(&opts.TargetPath, "path", "", "Directory to create the structure and repository in (default: current directory)")
	cmd.Flags().StringVar(&opts.RemoteURL, "remote", "", "URL of the remote repository")
	cmd.Flags().StringVar(&opts.AuthorName, "name", "", "Commit author name")
	cmd.Flags().StringVar(&opts.AuthorEmail, "email", "", "Commit author email")
	cmd.Flags().StringVarP(&opts.StructurePath, "structure", "s", "", "Structure file (JSON, YAML or TOML)")
	cmd.Flags().BoolVar(&browse, "browse", false, "Pick the structure file and target directory interactively")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Never prompt")

	_ = cmd.RegisterFlagCompletionFunc("structure", helpers.CompleteStructureFiles)
	_ = cmd.RegisterFlagCompletionFunc("path", helpers.CompleteDirectories)

	return cmd
}

// applyConfigDefaults fills inputs the user left empty from the config file
// and git config
func applyConfigDefaults(ctx *runtime.Context, opts actions.SeedOptions) actions.SeedOptions {
	if opts.RemoteURL == "" {
		opts.RemoteURL = ctx.Config.Remote
	}
	if opts.StructurePath == "" {
		opts.StructurePath = ctx.Config.Structure
	}
	if opts.AuthorName == "" || opts.AuthorEmail == "" {
		author := ctx.Config.ResolveAuthor(ctx, git.NewCommandRunner(""))
		if opts.AuthorName == "" {
			opts.AuthorName = author.Name
		}
		if opts.AuthorEmail == "" {
			opts.AuthorEmail = author.Email
		}
	}
	return opts
}

func hasEmptyInput(opts actions.SeedOptions) bool {
	opts = opts.Normalize()
	return opts.TargetPath == "" || opts.RemoteURL == "" || opts.AuthorName == "" ||
		opts.AuthorEmail == "" || opts.StructurePath == ""
}

// inputPrompts are the interactive ways of filling in missing inputs
type inputPrompts struct {
	pickFile func(message, defaultPath string) (string, error)
	pickDir  func(message, defaultPath string) (string, error)
	form     func(initial tui.FormValues) (tui.FormValues, error)
}

var terminalPrompts = inputPrompts{
	pickFile: tui.BrowseFile,
	pickDir:  tui.BrowseDirectory,
	form:     tui.RunInputForm,
}

// collect runs the pickers when browse is set, then the form while an input
// is still empty. Cancelling the structure file picker skips the form, so the
// empty path fails validation before anything is written.
func (p inputPrompts) collect(opts actions.SeedOptions, browse bool) (actions.SeedOptions, error) {
	if browse {
		var canceled bool
		var err error
		if opts, canceled, err = p.browsePaths(opts); err != nil || canceled {
			return opts, err
		}
	}
	if !hasEmptyInput(opts) {
		return opts, nil
	}
	return p.promptInputs(opts)
}

func (p inputPrompts) browsePaths(opts actions.SeedOptions) (actions.SeedOptions, bool, error) {
	var err error
	if opts.StructurePath == "" {
		if opts.StructurePath, err = p.pickFile("Structure file", ""); err != nil {
			return opts, false, err
		}
		if opts.StructurePath == "" {
			return opts, true, nil
		}
	}
	if opts.TargetPath == "" {
		if opts.TargetPath, err = p.pickDir("Local repository path", ""); err != nil {
			return opts, false, err
		}
	}
	return opts, false, nil
}

func (p inputPrompts) promptInputs(opts actions.SeedOptions) (actions.SeedOptions, error) {
	values, err := p.form(tui.FormValues{
		TargetPath:    opts.TargetPath,
		RemoteURL:     opts.RemoteURL,
		AuthorName:    opts.AuthorName,
		AuthorEmail:   opts.AuthorEmail,
		StructurePath: opts.StructurePath,
	})
	if err != nil {
		return opts, err
	}
	return actions.SeedOptions{
		TargetPath:    values.TargetPath,
		RemoteURL:     values.RemoteURL,
		AuthorName:    values.AuthorName,
		AuthorEmail:   values.AuthorEmail,
		StructurePath: values.StructurePath,
	}, nil
}
