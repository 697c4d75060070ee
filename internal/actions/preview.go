package actions

import (
	"path/filepath"
	"strings"

	"seedrepo.dev/seedrepo/internal/runtime"
	"seedrepo.dev/seedrepo/internal/structure"
	"seedrepo.dev/seedrepo/internal/tui"
)

// PreviewOptions configures PreviewAction
type PreviewOptions struct {
	StructurePath string
	// Root labels the top of the tree. Defaults to "."
	Root string
}

// PreviewAction prints the tree a structure file would create without
// touching disk
func PreviewAction(ctx *runtime.Context, opts PreviewOptions) error {
	opts.StructurePath = strings.TrimSpace(opts.StructurePath)
	if err := (SeedOptions{StructurePath: opts.StructurePath}).Validate(); err != nil {
		return err
	}

	desc, err := structure.Load(opts.StructurePath)
	if err != nil {
		return err
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	plan := structure.Plan(desc)
	ctx.Splog.Page(strings.Join(tui.RenderPlan(filepath.ToSlash(root), plan), "\n") + "\n")

	files, dirs := structure.Counts(plan)
	ctx.Splog.Info("%d files, %d directories", files, dirs)
	return nil
}
