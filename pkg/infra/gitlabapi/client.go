package gitlabapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/safe"
)

const defaultBaseURL = "https://gitlab.com/api/v4"

// Client is the GitLab implementation of the hosting platform, backed by
// direct calls to the REST API.
type Client struct {
	baseURL    string
	token      string
	project    string
	webURL     string
	httpClient *http.Client
}

var _ interfaces.Platform = (*Client)(nil)

type Option func(*Client)

// WithBaseURL overrides the API endpoint, for self-hosted instances and
// tests.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

// New builds a client for one project, given as its full namespaced path
// such as "group/repo".
func New(token, project string, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrPlatformNotConfigured, "GitLab token is empty",
			goerr.V("project", project))
	}
	if project == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "project path is required")
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		token:      token,
		project:    project,
		webURL:     "https://gitlab.com/" + project,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range options {
		opt(client)
	}
	return client, nil
}

func (x *Client) Name() string {
	return "gitlab"
}

func (x *Client) ReviewURL(number int) string {
	return fmt.Sprintf("%s/-/merge_requests/%d", x.webURL, number)
}

func (x *Client) projectPath(parts ...string) string {
	path := x.baseURL + "/projects/" + url.PathEscape(x.project)
	for _, p := range parts {
		path += "/" + p
	}
	return path
}

func (x *Client) do(ctx context.Context, method, rawURL string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "marshaling request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return goerr.Wrap(err, "building request", goerr.V("url", rawURL))
	}
	req.Header.Set("PRIVATE-TOKEN", x.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "sending request", goerr.V("url", rawURL))
	}
	defer safe.Close(resp.Body)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "reading response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.New("GitLab API request failed",
			goerr.V("url", rawURL),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return goerr.Wrap(err, "unmarshaling response", goerr.V("url", rawURL))
		}
	}
	return nil
}

type mergeRequest struct {
	IID                       int    `json:"iid"`
	Title                     string `json:"title"`
	WebURL                    string `json:"web_url"`
	SourceBranch              string `json:"source_branch"`
	TargetBranch              string `json:"target_branch"`
	MergeStatus               string `json:"merge_status"`
	MergeWhenPipelineSucceeds bool   `json:"merge_when_pipeline_succeeds"`
	Author                    struct {
		Username string `json:"username"`
	} `json:"author"`
}

func convertMergeRequest(mr *mergeRequest) *model.PullRequest {
	return &model.PullRequest{
		NodeID:    types.NodeID(strconv.Itoa(mr.IID)),
		Number:    mr.IID,
		Title:     mr.Title,
		URL:       mr.WebURL,
		Owner:     mr.Author.Username,
		HeadRef:   mr.SourceBranch,
		BaseRef:   mr.TargetBranch,
		Mergeable: mr.MergeStatus == "can_be_merged",
		AutoMerge: model.AutoMerge{
			// Merge-when-pipeline-succeeds has no per-viewer capability
			// flags; anyone who can merge can toggle it.
			CanEnable:  !mr.MergeWhenPipelineSucceeds,
			CanDisable: mr.MergeWhenPipelineSucceeds,
			IsEnabled:  mr.MergeWhenPipelineSucceeds,
		},
	}
}

func (x *Client) findMergeRequest(ctx context.Context, sourceBranch, targetBranch string) (*mergeRequest, error) {
	query := url.Values{
		"source_branch": {sourceBranch},
		"state":         {"opened"},
	}
	if targetBranch != "" {
		query.Set("target_branch", targetBranch)
	}

	var mrs []mergeRequest
	if err := x.do(ctx, http.MethodGet, x.projectPath("merge_requests")+"?"+query.Encode(), nil, &mrs); err != nil {
		return nil, err
	}
	if len(mrs) == 0 {
		return nil, nil
	}
	return &mrs[0], nil
}

func (x *Client) FindReviewRequest(ctx context.Context, headRef, baseRef string) (*model.PullRequest, error) {
	mr, err := x.findMergeRequest(ctx, headRef, baseRef)
	if err != nil || mr == nil {
		return nil, err
	}
	return convertMergeRequest(mr), nil
}

func (x *Client) CreateReviewRequest(ctx context.Context, input *model.CreateReviewRequestInput) (*model.PullRequest, error) {
	body := map[string]any{
		"source_branch": input.HeadRef,
		"target_branch": input.BaseRef,
		"title":         input.Title,
		"description":   input.Body,
	}
	if len(input.Reviewers) > 0 {
		ids, err := x.userIDs(ctx, input.Reviewers)
		if err != nil {
			return nil, err
		}
		body["reviewer_ids"] = ids
		body["assignee_id"] = ids[0]
	}

	var mr mergeRequest
	if err := x.do(ctx, http.MethodPost, x.projectPath("merge_requests"), body, &mr); err != nil {
		return nil, err
	}
	return convertMergeRequest(&mr), nil
}

func (x *Client) UpdateReviewers(ctx context.Context, number int, reviewers []string) error {
	if len(reviewers) == 0 {
		return nil
	}
	ids, err := x.userIDs(ctx, reviewers)
	if err != nil {
		return err
	}
	return x.do(ctx, http.MethodPut, x.projectPath("merge_requests", strconv.Itoa(number)), map[string]any{
		"reviewer_ids": ids,
		"assignee_ids": ids,
	}, nil)
}

func (x *Client) userIDs(ctx context.Context, usernames []string) ([]int, error) {
	ids := make([]int, 0, len(usernames))
	for _, username := range usernames {
		var users []struct {
			ID int `json:"id"`
		}
		query := url.Values{"username": {username}}
		if err := x.do(ctx, http.MethodGet, x.baseURL+"/users?"+query.Encode(), nil, &users); err != nil {
			return nil, err
		}
		if len(users) == 0 {
			return nil, goerr.New("unknown GitLab user", goerr.V("username", username))
		}
		ids = append(ids, users[0].ID)
	}
	return ids, nil
}

func (x *Client) ListEngineers(ctx context.Context) ([]model.Engineer, error) {
	var members []struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := x.do(ctx, http.MethodGet, x.projectPath("members", "all"), nil, &members); err != nil {
		return nil, err
	}

	engineers := make([]model.Engineer, 0, len(members))
	for _, m := range members {
		engineers = append(engineers, model.Engineer{Login: m.Username, Email: m.Email})
	}
	return engineers, nil
}

func (x *Client) ListAssignableUsers(ctx context.Context) ([]string, error) {
	engineers, err := x.ListEngineers(ctx)
	if err != nil {
		return nil, err
	}
	logins := make([]string, 0, len(engineers))
	for _, e := range engineers {
		logins = append(logins, e.Login)
	}
	return logins, nil
}

func (x *Client) PullRequestInfo(ctx context.Context, headRef string) (*model.PullRequest, *model.RepoSettings, error) {
	var project struct {
		RemoveSourceBranchAfterMerge bool `json:"remove_source_branch_after_merge"`
		Permissions                  struct {
			ProjectAccess *struct {
				AccessLevel int `json:"access_level"`
			} `json:"project_access"`
		} `json:"permissions"`
	}
	if err := x.do(ctx, http.MethodGet, x.projectPath(), nil, &project); err != nil {
		return nil, nil, err
	}

	settings := &model.RepoSettings{
		DeleteBranchOnMerge: project.RemoveSourceBranchAfterMerge,
		ViewerCanAdminister: project.Permissions.ProjectAccess != nil && project.Permissions.ProjectAccess.AccessLevel >= 40,
		AllowAutoMerge:      true,
	}

	mr, err := x.findMergeRequest(ctx, headRef, "")
	if err != nil {
		return nil, nil, err
	}
	if mr == nil {
		return nil, settings, nil
	}
	return convertMergeRequest(mr), settings, nil
}

// EnableAutoMerge turns on merge-when-pipeline-succeeds for the merge
// request whose IID is carried in id.
func (x *Client) EnableAutoMerge(ctx context.Context, id types.NodeID) error {
	return x.do(ctx, http.MethodPut, x.baseURL+"/projects/"+url.PathEscape(x.project)+"/merge_requests/"+string(id)+"/merge", map[string]any{
		"merge_when_pipeline_succeeds": true,
		"squash":                       true,
	}, nil)
}

func (x *Client) DisableAutoMerge(ctx context.Context, id types.NodeID) error {
	return x.do(ctx, http.MethodPost, x.projectPath("merge_requests", string(id), "cancel_merge_when_pipeline_succeeds"), nil, nil)
}

func (x *Client) Merge(ctx context.Context, number int, sha types.CommitSHA) error {
	return x.do(ctx, http.MethodPut, x.projectPath("merge_requests", strconv.Itoa(number), "merge"), map[string]any{
		"squash": true,
		"sha":    string(sha),
	}, nil)
}

func (x *Client) LabelIssue(ctx context.Context, number int, label string) error {
	return x.do(ctx, http.MethodPut, x.projectPath("issues", strconv.Itoa(number)), map[string]any{
		"add_labels": label,
	}, nil)
}

func (x *Client) CIStatus(ctx context.Context, ref string) (string, string, error) {
	query := url.Values{"ref": {ref}, "per_page": {"1"}}
	var pipelines []struct {
		Status string `json:"status"`
		WebURL string `json:"web_url"`
	}
	if err := x.do(ctx, http.MethodGet, x.projectPath("pipelines")+"?"+query.Encode(), nil, &pipelines); err != nil {
		return "", "", err
	}
	if len(pipelines) == 0 {
		return "", "", nil
	}

	state := pipelines[0].Status
	switch state {
	case "running", "created", "waiting_for_resource", "preparing":
		state = "pending"
	}
	return state, fmt.Sprintf("pipeline: %s (%s)", pipelines[0].Status, pipelines[0].WebURL), nil
}

func (x *Client) EnableDeleteBranchOnMerge(ctx context.Context) error {
	return x.do(ctx, http.MethodPut, x.projectPath(), map[string]any{
		"remove_source_branch_after_merge": true,
	}, nil)
}
