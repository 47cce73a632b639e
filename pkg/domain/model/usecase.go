package model

import (
	"time"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ReviewInput carries the parameters of one `gitreview review` invocation.
type ReviewInput struct {
	// Reviewers are the platform logins to assign, comma separated on the
	// command line.
	Reviewers []string
	// Username prefixes the remote branch name. Defaults to the local part
	// of the configured git email.
	Username string
	// Base forces the review to target the given base branch.
	Base string
	// Force overwrites any pre-existing remote branch and skips opening a
	// review request.
	Force bool
	// Submit runs the submit flow with auto-merge after the push.
	Submit bool
	// AutoAssign picks a reviewer by round-robin among available engineers.
	AutoAssign bool
	// Browse opens the existing review in a browser instead of creating one.
	Browse bool
}

func (x *ReviewInput) Validate() error {
	if x.Username == "" {
		return goerr.New("could not find username, most probably you need to setup an email with:\n" +
			"  git config user.email <me@example.org>")
	}
	return nil
}

// SubmitInput carries the parameters of one `gitreview submit` invocation.
type SubmitInput struct {
	// Branch is the branch to submit. Defaults to the current branch.
	Branch string
	// Force submits regardless of the CI status.
	Force bool
	// Abort cancels any pending auto-merge and recreates the tracking
	// branch from the remote.
	Abort bool
	// User prefixes the remote branch name, only used with Abort or Rebase.
	User string
	// Rebase runs the squash rebase without asking.
	Rebase bool
}

// CommentNotificationInput is the relay-side snapshot of an issue-comment
// webhook delivery.
type CommentNotificationInput struct {
	InstallID types.GitHubAppInstallID
	Owner     string
	Repo      string
	Number    int
	Title     string
	PROwner   string
	Assignees []string
	Comment   ReviewComment
}

// StatusNotificationInput is the relay-side snapshot of a commit-status
// webhook delivery.
type StatusNotificationInput struct {
	InstallID types.GitHubAppInstallID
	Owner     string
	Repo      string
	SHA       types.CommitSHA
	Context   string
	State     string
	TargetURL string
	Author    string
	UpdatedAt time.Time
}
