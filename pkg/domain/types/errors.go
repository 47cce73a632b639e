package types

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrInvalidOption = goerr.New("invalid option")

	// Branch resolution and working tree state.
	ErrNeedsBranch      = goerr.New("a branch is required")
	ErrDirtyWorkingTree = goerr.New("working tree is dirty")
	ErrNothingToReview  = goerr.New("all code on this branch has already been submitted")
	ErrNothingToSubmit  = goerr.New("no changes to submit")
	ErrNoDefaultBranch  = goerr.New("unable to find a remote HEAD reference")
	ErrInvalidBranch    = goerr.New("not a valid branch")
	ErrNotUpToDate      = goerr.New("local branch is not in the same state as remote branch")

	// Submit state machine.
	ErrSquashRequired = goerr.New("changes must be grouped in one commit")
	ErrRebaseDeclined = goerr.New("rebase declined")
	ErrAborted        = goerr.New("submission aborted")

	// Hosting platform.
	ErrUnsupportedPlatform   = goerr.New("review requests are available only for GitLab and GitHub")
	ErrPlatformNotConfigured = goerr.New("hosting platform is not configured")
	ErrNoReviewerAvailable   = goerr.New("no reviewer available")

	// Notification relay.
	ErrNotEnoughData = goerr.New("not enough data in notification payload")
	ErrSetup         = goerr.New("setup error")

	ErrExecution = goerr.New("unexpected upstream failure")
)

// exitCodes maps each error kind to a stable process exit code. The table
// replaces the historical trick of hashing the error message.
var exitCodes = []struct {
	err  error
	code int
}{
	{ErrNeedsBranch, 1},
	{ErrDirtyWorkingTree, 2},
	{ErrNothingToReview, 3},
	{ErrNothingToSubmit, 3},
	{ErrRebaseDeclined, 4},
	{ErrNotUpToDate, 5},
	{ErrAborted, 7},
	{ErrInvalidBranch, 8},
	{ErrNoDefaultBranch, 9},
	{ErrSquashRequired, 12},
}

// ExitCode returns the process exit code for err. Unlisted errors share a
// single generic failure code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	for _, ec := range exitCodes {
		if errors.Is(err, ec.err) {
			return ec.code
		}
	}
	return 10
}
