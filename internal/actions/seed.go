package actions

import (
	"path/filepath"
	"strings"

	"seedrepo.dev/seedrepo/internal/bootstrap"
	seederrors "seedrepo.dev/seedrepo/internal/errors"
	"seedrepo.dev/seedrepo/internal/git"
	"seedrepo.dev/seedrepo/internal/runtime"
	"seedrepo.dev/seedrepo/internal/structure"
)

// SeedOptions are the five inputs of the seed workflow
type SeedOptions struct {
	// TargetPath is where the structure and repository are created. Empty means
	// the current directory.
	TargetPath    string
	RemoteURL     string
	AuthorName    string
	AuthorEmail   string
	StructurePath string
}

// Normalize returns a copy with surrounding whitespace removed from every field
func (o SeedOptions) Normalize() SeedOptions {
	return SeedOptions{
		TargetPath:    strings.TrimSpace(o.TargetPath),
		RemoteURL:     strings.TrimSpace(o.RemoteURL),
		AuthorName:    strings.TrimSpace(o.AuthorName),
		AuthorEmail:   strings.TrimSpace(o.AuthorEmail),
		StructurePath: strings.TrimSpace(o.StructurePath),
	}
}

// Validate checks the options before anything touches disk
func (o SeedOptions) Validate() error {
	if o.StructurePath == "" {
		return seederrors.NewInputValidationError("structure path", "no structure file selected")
	}
	return nil
}

// SeedAction materializes the structure file into the target directory, then
// turns it into a repository and pushes it. Push failures are reported in the
// returned report; everything else that goes wrong is returned as an error.
func SeedAction(ctx *runtime.Context, opts SeedOptions) (*bootstrap.Report, error) {
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	desc, err := structure.Load(opts.StructurePath)
	if err != nil {
		return nil, err
	}

	target := opts.TargetPath
	if target == "" {
		target = "."
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return nil, err
	}

	plan := structure.Plan(desc)
	files, dirs := structure.Counts(plan)
	ctx.Splog.Debug("Creating %d files and %d directories in %s", files, dirs, target)
	if err := structure.Materialize(target, desc); err != nil {
		return nil, err
	}

	report, err := bootstrap.New(bootstrap.Options{
		RepoPath:  target,
		RemoteURL: opts.RemoteURL,
		Author:    git.Signature{Name: opts.AuthorName, Email: opts.AuthorEmail},
		Splog:     ctx.Splog,
		Diagnoser: ctx.Diagnoser,
	}).Run(ctx)
	if err != nil {
		return report, err
	}

	printSummary(ctx, target, files, dirs, report)
	return report, nil
}
