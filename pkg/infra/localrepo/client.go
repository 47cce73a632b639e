package localrepo

import (
	"context"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// Client serves repositories whose remote is a plain filesystem path or an
// unrecognized host. Review bookkeeping does not exist there, so every call
// succeeds without doing anything and lookups report nothing found. This
// keeps the push and rebase flows usable on such remotes.
type Client struct{}

var _ interfaces.Platform = (*Client)(nil)

func New() *Client {
	return &Client{}
}

func (x *Client) Name() string {
	return "local"
}

func (x *Client) ReviewURL(number int) string {
	return ""
}

func (x *Client) ListEngineers(ctx context.Context) ([]model.Engineer, error) {
	return nil, nil
}

func (x *Client) ListAssignableUsers(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (x *Client) FindReviewRequest(ctx context.Context, headRef, baseRef string) (*model.PullRequest, error) {
	return nil, nil
}

func (x *Client) CreateReviewRequest(ctx context.Context, input *model.CreateReviewRequestInput) (*model.PullRequest, error) {
	return nil, nil
}

func (x *Client) UpdateReviewers(ctx context.Context, number int, reviewers []string) error {
	return nil
}

func (x *Client) PullRequestInfo(ctx context.Context, headRef string) (*model.PullRequest, *model.RepoSettings, error) {
	return nil, &model.RepoSettings{}, nil
}

func (x *Client) EnableAutoMerge(ctx context.Context, id types.NodeID) error {
	return nil
}

func (x *Client) DisableAutoMerge(ctx context.Context, id types.NodeID) error {
	return nil
}

func (x *Client) Merge(ctx context.Context, number int, sha types.CommitSHA) error {
	return nil
}

func (x *Client) LabelIssue(ctx context.Context, number int, label string) error {
	return nil
}

func (x *Client) CIStatus(ctx context.Context, ref string) (string, string, error) {
	return "", "", nil
}

func (x *Client) EnableDeleteBranchOnMerge(ctx context.Context) error {
	return nil
}
