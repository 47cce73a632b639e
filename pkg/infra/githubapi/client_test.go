package githubapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/infra/githubapi"
	"github.com/bayesimpact/gitreview/pkg/utils/testutil"
)

func newGraphQLClient(t *testing.T, handler http.HandlerFunc) *githubapi.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return gt.R1(githubapi.New("test-token", "bayesimpact", "web",
		githubapi.WithGraphQLURL(srv.URL),
		githubapi.WithHTTPClient(srv.Client()),
	)).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		gt.R1(githubapi.New("", "bayesimpact", "web")).Error(t)
	})

	t.Run("missing repository", func(t *testing.T) {
		gt.R1(githubapi.New("test-token", "bayesimpact", "")).Error(t)
	})
}

func TestReviewURL(t *testing.T) {
	client := gt.R1(githubapi.New("test-token", "bayesimpact", "web")).NoError(t)
	gt.V(t, client.ReviewURL(42)).Equal("https://reviewable.io/reviews/bayesimpact/web/42")
}

func TestPullRequestInfo(t *testing.T) {
	prInfoData := map[string]any{
		"repository": map[string]any{
			"deleteBranchOnMerge": true,
			"viewerCanAdminister": false,
			"autoMergeAllowed":    true,
			"pullRequests": map[string]any{
				"nodes": []map[string]any{{
					"id":                       "PR_node1",
					"number":                   42,
					"title":                    "Fix the flux capacitor",
					"url":                      "https://github.com/bayesimpact/web/pull/42",
					"mergeable":                "MERGEABLE",
					"viewerCanEnableAutoMerge": true,
					"autoMergeRequest":         map[string]any{"enabledAt": "2024-01-01T00:00:00Z"},
					"author":                   map[string]any{"login": "gcharbon"},
					"headRefName":              "guillaume-fix-bug",
					"baseRefName":              "main",
				}},
			},
		},
	}

	t.Run("open pull request and repository settings", func(t *testing.T) {
		var calls int
		client := newGraphQLClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			gt.V(t, r.Header.Get("Authorization")).Equal("bearer test-token")

			var req map[string]any
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			gt.True(t, strings.Contains(req["query"].(string), "pullRequests"))

			_ = json.NewEncoder(w).Encode(map[string]any{"data": prInfoData})
		})

		pr, settings, err := client.PullRequestInfo(context.Background(), "guillaume-fix-bug")
		gt.NoError(t, err)
		gt.V(t, pr.Number).Equal(42)
		gt.V(t, pr.Owner).Equal("gcharbon")
		gt.True(t, pr.Mergeable)
		gt.True(t, pr.AutoMerge.IsEnabled)
		gt.True(t, pr.AutoMerge.CanEnable)
		gt.True(t, settings.DeleteBranchOnMerge)
		gt.True(t, settings.AllowAutoMerge)
		gt.False(t, settings.ViewerCanAdminister)

		// Second lookup within the TTL is served from the cache.
		_, _, err = client.PullRequestInfo(context.Background(), "guillaume-fix-bug")
		gt.NoError(t, err)
		gt.V(t, calls).Equal(1)
	})

	t.Run("no open pull request still reports settings", func(t *testing.T) {
		client := newGraphQLClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
				"repository": map[string]any{
					"deleteBranchOnMerge": false,
					"pullRequests":        map[string]any{"nodes": []any{}},
				},
			}})
		})

		pr, settings, err := client.PullRequestInfo(context.Background(), "guillaume-fix-bug")
		gt.NoError(t, err)
		gt.True(t, pr == nil)
		gt.False(t, settings.DeleteBranchOnMerge)
	})

	t.Run("graphql errors are surfaced", func(t *testing.T) {
		client := newGraphQLClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"errors": []map[string]any{{"message": "Could not resolve to a Repository"}},
			})
		})

		_, _, err := client.PullRequestInfo(context.Background(), "guillaume-fix-bug")
		gt.Error(t, err)
	})
}

func TestEnableAutoMerge(t *testing.T) {
	t.Run("mutation plus reaction comment", func(t *testing.T) {
		var queries []string
		client := newGraphQLClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			queries = append(queries, req["query"].(string))

			if strings.Contains(req["query"].(string), "enablePullRequestAutoMerge") {
				_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
					"enablePullRequestAutoMerge": map[string]any{
						"pullRequest": map[string]any{
							"autoMergeRequest": map[string]any{"enabledAt": "2024-01-01T00:00:00Z"},
						},
					},
				}})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}})
		})

		gt.NoError(t, client.EnableAutoMerge(context.Background(), "PR_node1"))
		gt.V(t, len(queries)).Equal(2)
		gt.True(t, strings.Contains(queries[1], "addComment"))
	})

	t.Run("platform refusing auto-merge is an error", func(t *testing.T) {
		client := newGraphQLClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{
				"enablePullRequestAutoMerge": map[string]any{
					"pullRequest": map[string]any{},
				},
			}})
		})

		gt.Error(t, client.EnableAutoMerge(context.Background(), "PR_node1"))
	})
}

func TestLiveGitHub(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITREVIEW_GITHUB_TOKEN")
	repo := testutil.GetEnvOrSkip(t, "TEST_GITREVIEW_GITHUB_REPO")

	owner, name, ok := strings.Cut(repo, "/")
	gt.True(t, ok)

	client := gt.R1(githubapi.New(types.GitHubToken(token), owner, name)).NoError(t)

	pr, err := client.FindReviewRequest(context.Background(), "no-such-branch-gitreview-test", "main")
	gt.NoError(t, err)
	gt.True(t, pr == nil)
}
