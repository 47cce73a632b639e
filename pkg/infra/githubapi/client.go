package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// HTTPClient is the part of http.Client the GraphQL path needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

const autoMergeReaction = ":rocket:"

// Client is the GitHub implementation of the hosting platform.
type Client struct {
	rest       *github.Client
	httpClient HTTPClient
	token      types.GitHubToken
	owner      string
	repo       string
	team       string
	graphqlURL string
	cache      *responseCache
}

var _ interfaces.Platform = (*Client)(nil)

type Option func(*Client)

// WithTeam restricts the engineer pool to an organization team slug instead
// of the repository collaborators.
func WithTeam(slug string) Option {
	return func(x *Client) {
		x.team = slug
	}
}

// WithHTTPClient overrides the HTTP client used for GraphQL calls.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

// WithGraphQLURL overrides the GraphQL endpoint, mainly for tests.
func WithGraphQLURL(url string) Option {
	return func(x *Client) {
		x.graphqlURL = url
	}
}

// WithRESTClient overrides the REST client, mainly for tests.
func WithRESTClient(rest *github.Client) Option {
	return func(x *Client) {
		x.rest = rest
	}
}

// WithCacheTTL sets the lifetime of the in-process response cache. Zero
// disables caching entirely.
func WithCacheTTL(ttl time.Duration) Option {
	return func(x *Client) {
		x.cache = newResponseCache(ttl)
	}
}

func New(token types.GitHubToken, owner, repo string, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrPlatformNotConfigured, "GitHub token is empty",
			goerr.V("owner", owner), goerr.V("repo", repo))
	}
	if owner == "" || repo == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "owner and repo are required")
	}

	client := &Client{
		token:      token,
		owner:      owner,
		repo:       repo,
		graphqlURL: defaultGraphQLURL,
		cache:      newResponseCache(30 * time.Second),
	}
	for _, opt := range options {
		opt(client)
	}

	if client.rest == nil || client.httpClient == nil {
		httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: string(token)},
		))
		if client.rest == nil {
			client.rest = github.NewClient(httpClient)
		}
		if client.httpClient == nil {
			client.httpClient = httpClient
		}
	}

	return client, nil
}

func (x *Client) Name() string {
	return "github"
}

// ReviewURL points at the review frontend rather than the raw pull request
// page.
func (x *Client) ReviewURL(number int) string {
	return fmt.Sprintf("https://reviewable.io/reviews/%s/%s/%d", x.owner, x.repo, number)
}

func (x *Client) ListEngineers(ctx context.Context) ([]model.Engineer, error) {
	var logins []string

	if x.team != "" {
		opts := &github.TeamListTeamMembersOptions{
			ListOptions: github.ListOptions{PerPage: 100},
		}
		for {
			members, resp, err := x.rest.Teams.ListTeamMembersBySlug(ctx, x.owner, x.team, opts)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to list team members", goerr.V("team", x.team))
			}
			for _, m := range members {
				logins = append(logins, m.GetLogin())
			}
			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
	} else {
		opts := &github.ListCollaboratorsOptions{
			ListOptions: github.ListOptions{PerPage: 100},
		}
		for {
			users, resp, err := x.rest.Repositories.ListCollaborators(ctx, x.owner, x.repo, opts)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to list collaborators")
			}
			for _, u := range users {
				logins = append(logins, u.GetLogin())
			}
			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
	}

	engineers := make([]model.Engineer, 0, len(logins))
	for _, login := range logins {
		engineer := model.Engineer{Login: login}
		if user, _, err := x.rest.Users.Get(ctx, login); err == nil {
			engineer.Email = user.GetEmail()
		}
		engineers = append(engineers, engineer)
	}
	return engineers, nil
}

func (x *Client) ListAssignableUsers(ctx context.Context) ([]string, error) {
	var logins []string
	opts := &github.ListOptions{PerPage: 100}
	for {
		users, resp, err := x.rest.Issues.ListAssignees(ctx, x.owner, x.repo, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list assignable users")
		}
		for _, u := range users {
			logins = append(logins, u.GetLogin())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return logins, nil
}

func (x *Client) FindReviewRequest(ctx context.Context, headRef, baseRef string) (*model.PullRequest, error) {
	prs, _, err := x.rest.PullRequests.List(ctx, x.owner, x.repo, &github.PullRequestListOptions{
		State: "open",
		Head:  x.owner + ":" + headRef,
		Base:  baseRef,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pull requests",
			goerr.V("head", headRef), goerr.V("base", baseRef))
	}
	if len(prs) == 0 {
		return nil, nil
	}
	return convertPullRequest(prs[0]), nil
}

func (x *Client) CreateReviewRequest(ctx context.Context, input *model.CreateReviewRequestInput) (*model.PullRequest, error) {
	pr, _, err := x.rest.PullRequests.Create(ctx, x.owner, x.repo, &github.NewPullRequest{
		Title: github.String(input.Title),
		Body:  github.String(input.Body),
		Head:  github.String(input.HeadRef),
		Base:  github.String(input.BaseRef),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create pull request",
			goerr.V("head", input.HeadRef), goerr.V("base", input.BaseRef))
	}

	if len(input.Reviewers) > 0 {
		if err := x.UpdateReviewers(ctx, pr.GetNumber(), input.Reviewers); err != nil {
			return nil, err
		}
	}
	return convertPullRequest(pr), nil
}

func (x *Client) UpdateReviewers(ctx context.Context, number int, reviewers []string) error {
	if len(reviewers) == 0 {
		return nil
	}
	if _, _, err := x.rest.PullRequests.RequestReviewers(ctx, x.owner, x.repo, number, github.ReviewersRequest{
		Reviewers: reviewers,
	}); err != nil {
		return goerr.Wrap(err, "failed to request reviewers",
			goerr.V("number", number), goerr.V("reviewers", reviewers))
	}
	if _, _, err := x.rest.Issues.AddAssignees(ctx, x.owner, x.repo, number, reviewers); err != nil {
		return goerr.Wrap(err, "failed to add assignees",
			goerr.V("number", number), goerr.V("reviewers", reviewers))
	}
	return nil
}

type pullRequestInfoData struct {
	Repository struct {
		DeleteBranchOnMerge bool `json:"deleteBranchOnMerge"`
		ViewerCanAdminister bool `json:"viewerCanAdminister"`
		AutoMergeAllowed    bool `json:"autoMergeAllowed"`
		PullRequests        struct {
			Nodes []struct {
				ID                        string `json:"id"`
				Number                    int    `json:"number"`
				Title                     string `json:"title"`
				URL                       string `json:"url"`
				Mergeable                 string `json:"mergeable"`
				ViewerCanEnableAutoMerge  bool   `json:"viewerCanEnableAutoMerge"`
				ViewerCanDisableAutoMerge bool   `json:"viewerCanDisableAutoMerge"`
				AutoMergeRequest          *struct {
					EnabledAt string `json:"enabledAt"`
				} `json:"autoMergeRequest"`
				Author struct {
					Login string `json:"login"`
				} `json:"author"`
				HeadRefName string `json:"headRefName"`
				BaseRefName string `json:"baseRefName"`
			} `json:"nodes"`
		} `json:"pullRequests"`
	} `json:"repository"`
}

func (x *Client) PullRequestInfo(ctx context.Context, headRef string) (*model.PullRequest, *model.RepoSettings, error) {
	cacheKey := "pr-info:" + headRef
	if cached, ok := x.cache.get(cacheKey); ok {
		info := cached.(pullRequestInfoData)
		pr, settings := convertPullRequestInfo(info)
		return pr, settings, nil
	}

	var data pullRequestInfoData
	if err := x.graphql(ctx, queryPullRequestInfo, map[string]any{
		"owner":       x.owner,
		"name":        x.repo,
		"headRefName": headRef,
	}, &data); err != nil {
		return nil, nil, err
	}
	x.cache.set(cacheKey, data)

	pr, settings := convertPullRequestInfo(data)
	return pr, settings, nil
}

func convertPullRequestInfo(data pullRequestInfoData) (*model.PullRequest, *model.RepoSettings) {
	settings := &model.RepoSettings{
		DeleteBranchOnMerge: data.Repository.DeleteBranchOnMerge,
		ViewerCanAdminister: data.Repository.ViewerCanAdminister,
		AllowAutoMerge:      data.Repository.AutoMergeAllowed,
	}

	nodes := data.Repository.PullRequests.Nodes
	if len(nodes) == 0 {
		return nil, settings
	}
	node := nodes[0]

	return &model.PullRequest{
		NodeID:    types.NodeID(node.ID),
		Number:    node.Number,
		Title:     node.Title,
		URL:       node.URL,
		Owner:     node.Author.Login,
		HeadRef:   node.HeadRefName,
		BaseRef:   node.BaseRefName,
		Mergeable: node.Mergeable == "MERGEABLE",
		AutoMerge: model.AutoMerge{
			CanEnable:  node.ViewerCanEnableAutoMerge,
			CanDisable: node.ViewerCanDisableAutoMerge,
			IsEnabled:  node.AutoMergeRequest != nil && node.AutoMergeRequest.EnabledAt != "",
		},
	}, settings
}

// EnableAutoMerge asks the platform to merge the request once CI succeeds,
// and leaves a reaction comment so reviewers can see the submission is on
// its way.
func (x *Client) EnableAutoMerge(ctx context.Context, id types.NodeID) error {
	var result struct {
		EnablePullRequestAutoMerge struct {
			PullRequest struct {
				AutoMergeRequest *struct {
					EnabledAt string `json:"enabledAt"`
				} `json:"autoMergeRequest"`
			} `json:"pullRequest"`
		} `json:"enablePullRequestAutoMerge"`
	}
	if err := x.graphql(ctx, mutationEnableAutoMerge, map[string]any{
		"pullRequestId": string(id),
	}, &result); err != nil {
		return err
	}
	request := result.EnablePullRequestAutoMerge.PullRequest.AutoMergeRequest
	if request == nil || request.EnabledAt == "" {
		return goerr.New("auto-merge was not enabled", goerr.V("id", id))
	}

	return x.graphql(ctx, mutationAddComment, map[string]any{
		"subjectId": string(id),
		"body":      autoMergeReaction,
	}, nil)
}

// DisableAutoMerge cancels a pending auto-merge and removes the reaction
// comments left when it was enabled.
func (x *Client) DisableAutoMerge(ctx context.Context, id types.NodeID) error {
	if err := x.graphql(ctx, mutationDisableAutoMerge, map[string]any{
		"pullRequestId": string(id),
	}, nil); err != nil {
		return err
	}

	var comments struct {
		Node struct {
			Comments struct {
				Nodes []struct {
					ID   string `json:"id"`
					Body string `json:"body"`
				} `json:"nodes"`
			} `json:"comments"`
		} `json:"node"`
	}
	if err := x.graphql(ctx, queryPullRequestComments, map[string]any{
		"pullRequestId": string(id),
	}, &comments); err != nil {
		return err
	}

	for _, comment := range comments.Node.Comments.Nodes {
		if comment.Body != autoMergeReaction {
			continue
		}
		// Best effort: a comment someone already deleted is not a failure.
		_ = x.graphql(ctx, mutationDeleteComment, map[string]any{
			"commentId": comment.ID,
		}, nil)
	}
	return nil
}

func (x *Client) Merge(ctx context.Context, number int, sha types.CommitSHA) error {
	_, _, err := x.rest.PullRequests.Merge(ctx, x.owner, x.repo, number, "", &github.PullRequestOptions{
		SHA:         string(sha),
		MergeMethod: "squash",
	})
	if err != nil {
		return goerr.Wrap(err, "failed to merge pull request",
			goerr.V("number", number), goerr.V("sha", sha))
	}
	return nil
}

func (x *Client) LabelIssue(ctx context.Context, number int, label string) error {
	_, _, err := x.rest.Issues.AddLabelsToIssue(ctx, x.owner, x.repo, number, []string{label})
	if err != nil {
		return goerr.Wrap(err, "failed to label issue",
			goerr.V("number", number), goerr.V("label", label))
	}
	return nil
}

func (x *Client) CIStatus(ctx context.Context, ref string) (string, string, error) {
	status, _, err := x.rest.Repositories.GetCombinedStatus(ctx, x.owner, x.repo, ref, &github.ListOptions{PerPage: 100})
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to get combined status", goerr.V("ref", ref))
	}

	var details []string
	for _, s := range status.Statuses {
		line := fmt.Sprintf("%s: %s", s.GetContext(), s.GetState())
		if url := s.GetTargetURL(); url != "" {
			line += " (" + url + ")"
		}
		details = append(details, line)
	}
	return status.GetState(), strings.Join(details, "\n"), nil
}

func (x *Client) EnableDeleteBranchOnMerge(ctx context.Context) error {
	_, _, err := x.rest.Repositories.Edit(ctx, x.owner, x.repo, &github.Repository{
		DeleteBranchOnMerge: github.Bool(true),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to update repository settings")
	}
	return nil
}

func convertPullRequest(pr *github.PullRequest) *model.PullRequest {
	return &model.PullRequest{
		NodeID:  types.NodeID(pr.GetNodeID()),
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		URL:     pr.GetHTMLURL(),
		Owner:   pr.GetUser().GetLogin(),
		HeadRef: pr.GetHead().GetRef(),
		BaseRef: pr.GetBase().GetRef(),
	}
}
