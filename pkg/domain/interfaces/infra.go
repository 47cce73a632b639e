package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitClient Platform RelayGitHub Notifier AbsenceSource Prompter

import (
	"context"
	"time"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// GitClient runs one git command and returns its trimmed standard output.
// A non-zero exit status is returned as an error carrying the command's
// standard error.
type GitClient interface {
	Output(ctx context.Context, args ...string) (string, error)
}

// Platform abstracts the hosting platform capabilities used by the CLI
// tools. The local variant implements every call as a no-op so that the
// interface stays total for filesystem-based remotes.
type Platform interface {
	Name() string

	// ReviewURL builds the URL of the review frontend for a request number.
	ReviewURL(number int) string

	ListEngineers(ctx context.Context) ([]model.Engineer, error)
	ListAssignableUsers(ctx context.Context) ([]string, error)

	// FindReviewRequest returns the open review request for the given head
	// and base branch pair, or nil when none exists.
	FindReviewRequest(ctx context.Context, headRef, baseRef string) (*model.PullRequest, error)
	CreateReviewRequest(ctx context.Context, input *model.CreateReviewRequestInput) (*model.PullRequest, error)
	UpdateReviewers(ctx context.Context, number int, reviewers []string) error

	// PullRequestInfo fetches the open request for headRef together with
	// the repository settings relevant to submitting.
	PullRequestInfo(ctx context.Context, headRef string) (*model.PullRequest, *model.RepoSettings, error)
	EnableAutoMerge(ctx context.Context, id types.NodeID) error
	DisableAutoMerge(ctx context.Context, id types.NodeID) error

	// Merge squashes the request, using sha as an optimistic concurrency
	// token: the merge fails if the remote tip has moved.
	Merge(ctx context.Context, number int, sha types.CommitSHA) error

	LabelIssue(ctx context.Context, number int, label string) error

	// CIStatus returns the aggregated CI state for a ref and a detailed
	// per-check report.
	CIStatus(ctx context.Context, ref string) (string, string, error)

	EnableDeleteBranchOnMerge(ctx context.Context) error
}

// RelayGitHub is the read-only GitHub access the notification relay needs,
// authenticated per App installation.
type RelayGitHub interface {
	ListIssueComments(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string, number int) ([]model.ReviewComment, error)
	ListStatuses(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, ref string) ([]model.CommitStatus, error)
	// FindPullRequestForCommit resolves the pull request a commit belongs
	// to, with its assignee logins. Returns nil when no request matches.
	FindPullRequestForCommit(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string, sha types.CommitSHA) (*model.PullRequest, []string, error)
}

// Notifier delivers one message to one chat channel.
type Notifier interface {
	Post(ctx context.Context, channel types.SlackChannel, text string) error
}

// AbsenceSource reports which of the given emails belong to people marked
// absent at the given time.
type AbsenceSource interface {
	AbsentEmails(ctx context.Context, emails []string, at time.Time) (map[string]bool, error)
}

// Prompter asks the user interactively. The non-interactive implementation
// answers "no" to every question.
type Prompter interface {
	AskYesNo(question string) bool
	ReadLine(prompt string) (string, error)
}
