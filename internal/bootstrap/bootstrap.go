package bootstrap

import (
	"context"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
	"seedrepo.dev/seedrepo/internal/git"
	"seedrepo.dev/seedrepo/internal/tui"
)

const (
	// RemoteName is the remote every push targets
	RemoteName = "origin"
	// DevBranch is the only branch left after the sequence
	DevBranch = "dev"
	// CommitMessage is the message of the commit that records the structure
	CommitMessage = "Initial commit with directory structure"
)

// StandardBranches are pointed at the new commit, in this order, before pruning
var StandardBranches = []string{"dev", "stage", "production", "feature"}

// Diagnoser explains why a push to remoteURL may have failed.
// It returns "" when it has nothing to add.
type Diagnoser interface {
	Diagnose(ctx context.Context, remoteURL string) string
}

// Options configures a Bootstrapper
type Options struct {
	RepoPath  string
	RemoteURL string
	Author    git.Signature
	Splog     *tui.Splog
	// Diagnoser is optional
	Diagnoser Diagnoser
}

// Report is what a run achieved
type Report struct {
	Stage    Stage
	Created  bool
	Commit   plumbing.Hash
	Branches []string
	Pushes   []git.PushResult
}

// PushFailures returns the pushes that did not succeed
func (r *Report) PushFailures() []git.PushResult {
	var failed []git.PushResult
	for _, p := range r.Pushes {
		if !p.OK() {
			failed = append(failed, p)
		}
	}
	return failed
}

// Bootstrapper runs the repository bootstrap sequence
type Bootstrapper struct {
	opts Options
}

// New returns a Bootstrapper. A nil Splog logs to stdout.
func New(opts Options) *Bootstrapper {
	if opts.Splog == nil {
		opts.Splog = tui.NewSplog()
	}
	return &Bootstrapper{opts: opts}
}

type step struct {
	reaches Stage
	run     func(ctx context.Context) error
}

// run carries the state shared between steps of one Run
type run struct {
	*Bootstrapper
	repo   *git.Repository
	report *Report
}

// Run executes every stage in order. A fatal failure is returned as a
// StageError together with the report of what was reached before it.
func (b *Bootstrapper) Run(ctx context.Context) (*Report, error) {
	r := &run{Bootstrapper: b, report: &Report{Stage: StageUninitialized}}

	steps := []step{
		{StageInitialized, r.initialize},
		{StageCommitted, r.commit},
		{StageBranchesNormalized, r.normalizeBranches},
		{StageDevCheckedOut, r.checkoutDev},
		{StagePruned, r.prune},
		{StageDevPushed, r.pushDev},
		{StageRemoteConfigured, r.configureRemote},
		{StageAllPushed, r.pushAll},
	}

	for _, s := range steps {
		b.opts.Splog.Debug("bootstrap: %s", s.reaches.Step())
		if err := s.run(ctx); err != nil {
			return r.report, seederrors.NewStageError(s.reaches.Step(), err)
		}
		r.report.Stage = s.reaches
	}
	return r.report, nil
}

func (r *run) initialize(_ context.Context) error {
	repo, created, err := git.InitRepository(r.opts.RepoPath)
	if err != nil {
		return err
	}
	r.repo = repo
	r.report.Created = created
	if created {
		r.opts.Splog.Debug("Initialized empty repository in %s", repo.Path())
	} else {
		r.opts.Splog.Debug("Reusing existing repository in %s", repo.Path())
	}
	return nil
}

func (r *run) commit(_ context.Context) error {
	if err := r.repo.StageAll(); err != nil {
		return err
	}
	hash, err := r.repo.Commit(CommitMessage, r.opts.Author)
	if err != nil {
		return err
	}
	r.report.Commit = hash
	r.opts.Splog.Debug("Committed %s as %s <%s>", hash, r.opts.Author.Name, r.opts.Author.Email)
	return nil
}

func (r *run) normalizeBranches(_ context.Context) error {
	for _, name := range StandardBranches {
		created, err := r.repo.SetBranch(name, r.report.Commit)
		if err != nil {
			return err
		}
		if created {
			r.opts.Splog.Debug("Created branch %s", name)
		} else {
			r.opts.Splog.Debug("Moved branch %s", name)
		}
	}
	return nil
}

func (r *run) checkoutDev(_ context.Context) error {
	return r.repo.CheckoutBranch(DevBranch)
}

func (r *run) prune(_ context.Context) error {
	names, err := r.repo.GetBranchNames()
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == DevBranch {
			continue
		}
		if err := r.repo.DeleteBranch(name); err != nil {
			return err
		}
		r.opts.Splog.Debug("Deleted branch %s", name)
	}
	r.report.Branches = []string{DevBranch}
	return nil
}

func (r *run) pushDev(ctx context.Context) error {
	r.push(ctx, DevBranch, true)
	return nil
}

func (r *run) configureRemote(_ context.Context) error {
	created, err := r.repo.EnsureRemote(RemoteName, r.opts.RemoteURL)
	if err != nil {
		return err
	}
	if created {
		r.opts.Splog.Debug("Added remote %s %s", RemoteName, r.opts.RemoteURL)
	} else {
		r.opts.Splog.Debug("Set remote %s to %s", RemoteName, r.opts.RemoteURL)
	}
	return nil
}

// pushAll pushes every local branch. The first failure ends the stage.
func (r *run) pushAll(ctx context.Context) error {
	names, err := r.repo.GetBranchNames()
	if err != nil {
		return err
	}
	r.report.Branches = names
	for _, name := range names {
		if !r.push(ctx, name, false) {
			break
		}
	}
	return nil
}

// push records the result and logs failures. It never fails the stage.
func (r *run) push(ctx context.Context, branch string, setUpstream bool) bool {
	result := r.repo.Push(ctx, RemoteName, branch, setUpstream)
	r.report.Pushes = append(r.report.Pushes, result)
	if result.OK() {
		r.opts.Splog.Debug("%s", result)
		return true
	}

	reason := strings.TrimSpace(result.Output)
	if reason == "" {
		reason = result.Err.Error()
	}
	r.opts.Splog.Error("Error pushing to the remote '%s': %s", RemoteName, reason)
	r.opts.Splog.Info("Please make sure the repository exists and you have the correct access rights.")

	if r.opts.Diagnoser != nil {
		url, err := r.repo.RemoteURL(RemoteName)
		if err != nil || url == "" {
			return false
		}
		if hint := r.opts.Diagnoser.Diagnose(ctx, url); hint != "" {
			r.opts.Splog.Tip("%s", hint)
		}
	}
	return false
}
