package ghapp

import (
	"context"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// Client gives the notification relay read access to GitHub, authenticated
// as a GitHub App installation.
type Client struct {
	appID types.GitHubAppID
	pem   types.GitHubAppPrivateKey
}

var _ interfaces.RelayGitHub = (*Client)(nil)

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	return &Client{
		appID: appID,
		pem:   pem,
	}, nil
}

func (x *Client) buildGithubClient(installID types.GitHubAppInstallID) (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.New(tr, int64(x.appID), int64(installID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create github client")
	}

	return github.NewClient(&http.Client{Transport: itr}), nil
}

// ListIssueComments fetches the full comment history of a pull request.
func (x *Client) ListIssueComments(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string, number int) ([]model.ReviewComment, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	var all []model.ReviewComment
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		comments, resp, err := client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list issue comments",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("number", number))
		}
		for _, c := range comments {
			all = append(all, model.ReviewComment{
				Author:    c.GetUser().GetLogin(),
				Body:      c.GetBody(),
				CreatedAt: c.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ListStatuses fetches all commit statuses attached to a ref.
func (x *Client) ListStatuses(ctx context.Context, installID types.GitHubAppInstallID, owner, repo, ref string) ([]model.CommitStatus, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, err
	}

	var all []model.CommitStatus
	opts := &github.ListOptions{PerPage: 100}
	for {
		statuses, resp, err := client.Repositories.ListStatuses(ctx, owner, repo, ref, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list commit statuses",
				goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("ref", ref))
		}
		for _, s := range statuses {
			all = append(all, model.CommitStatus{
				Context:   s.GetContext(),
				State:     s.GetState(),
				Author:    s.GetCreator().GetLogin(),
				TargetURL: s.GetTargetURL(),
				UpdatedAt: s.GetUpdatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// FindPullRequestForCommit resolves the open pull request a commit belongs
// to. Returns nil when the commit is not attached to any open request.
func (x *Client) FindPullRequestForCommit(ctx context.Context, installID types.GitHubAppInstallID, owner, repo string, sha types.CommitSHA) (*model.PullRequest, []string, error) {
	client, err := x.buildGithubClient(installID)
	if err != nil {
		return nil, nil, err
	}

	prs, _, err := client.PullRequests.ListPullRequestsWithCommit(ctx, owner, repo, string(sha), &github.PullRequestListOptions{
		State: "open",
	})
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list pull requests for commit",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("sha", sha))
	}
	if len(prs) == 0 {
		return nil, nil, nil
	}

	pr := prs[0]
	assignees := make([]string, 0, len(pr.Assignees))
	for _, a := range pr.Assignees {
		assignees = append(assignees, a.GetLogin())
	}

	return &model.PullRequest{
		NodeID:  types.NodeID(pr.GetNodeID()),
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		URL:     pr.GetHTMLURL(),
		Owner:   pr.GetUser().GetLogin(),
		HeadRef: pr.GetHead().GetRef(),
		BaseRef: pr.GetBase().GetRef(),
	}, assignees, nil
}
