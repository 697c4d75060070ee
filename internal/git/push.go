package git

import (
	"context"
	"fmt"

	seederrors "seedrepo.dev/seedrepo/internal/errors"
)

// PushResult is the outcome of one push. A failed push is reported here
// rather than as an error so callers decide whether it is fatal.
type PushResult struct {
	Remote      string
	Branch      string
	SetUpstream bool
	Output      string
	Err         error
}

// OK reports whether the push succeeded
func (p PushResult) OK() bool {
	return p.Err == nil
}

func (p PushResult) String() string {
	if p.OK() {
		return fmt.Sprintf("pushed %s to %s", p.Branch, p.Remote)
	}
	return fmt.Sprintf("push of %s to %s failed: %v", p.Branch, p.Remote, p.Err)
}

// Push pushes a local branch with the git binary so that the user's credential
// helpers and SSH agent apply. If setUpstream is true the branch is configured
// to track the pushed remote branch.
func (r *Repository) Push(ctx context.Context, remote, branchName string, setUpstream bool) PushResult {
	args := []string{"push"}
	if setUpstream {
		args = append(args, "--set-upstream")
	}
	args = append(args, remote, branchName)

	result := PushResult{Remote: remote, Branch: branchName, SetUpstream: setUpstream}
	output, err := r.runner.RunCombined(ctx, args...)
	result.Output = output
	if err != nil {
		result.Err = fmt.Errorf("%w: %s to %s: %w", seederrors.ErrPushFailed, branchName, remote, err)
	}
	return result
}
