package gitlabapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/infra/gitlabapi"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gitlabapi.Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return gt.R1(gitlabapi.New("test-token", "group/repo",
		gitlabapi.WithBaseURL(srv.URL))).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		gt.R1(gitlabapi.New("", "group/repo")).Error(t)
	})

	t.Run("missing project", func(t *testing.T) {
		gt.R1(gitlabapi.New("test-token", "")).Error(t)
	})
}

func TestFindReviewRequest(t *testing.T) {
	t.Run("open merge request is converted", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Header.Get("PRIVATE-TOKEN")).Equal("test-token")
			gt.V(t, r.URL.EscapedPath()).Equal("/projects/group%2Frepo/merge_requests")
			gt.V(t, r.URL.Query().Get("source_branch")).Equal("guillaume-fix-bug")
			gt.V(t, r.URL.Query().Get("state")).Equal("opened")

			_ = json.NewEncoder(w).Encode([]map[string]any{{
				"iid":           7,
				"title":         "Fix bug",
				"source_branch": "guillaume-fix-bug",
				"target_branch": "main",
				"merge_status":  "can_be_merged",
				"author":        map[string]any{"username": "gcharbon"},
			}})
		})

		pr, err := client.FindReviewRequest(context.Background(), "guillaume-fix-bug", "main")
		gt.NoError(t, err)
		gt.V(t, pr.Number).Equal(7)
		gt.V(t, pr.Owner).Equal("gcharbon")
		gt.True(t, pr.Mergeable)
		gt.False(t, pr.AutoMerge.IsEnabled)
	})

	t.Run("no open merge request", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("[]"))
		})

		pr, err := client.FindReviewRequest(context.Background(), "guillaume-fix-bug", "main")
		gt.NoError(t, err)
		gt.True(t, pr == nil)
	})

	t.Run("API failure is surfaced", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"401 Unauthorized"}`, http.StatusUnauthorized)
		})

		_, err := client.FindReviewRequest(context.Background(), "guillaume-fix-bug", "main")
		gt.Error(t, err)
	})
}

func TestCIStatus(t *testing.T) {
	t.Run("running pipeline is pending", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.EscapedPath()).Equal("/projects/group%2Frepo/pipelines")
			gt.V(t, r.URL.Query().Get("ref")).Equal("guillaume-fix-bug")
			_ = json.NewEncoder(w).Encode([]map[string]any{{
				"status":  "running",
				"web_url": "https://gitlab.com/group/repo/-/pipelines/1",
			}})
		})

		state, details, err := client.CIStatus(context.Background(), "guillaume-fix-bug")
		gt.NoError(t, err)
		gt.V(t, state).Equal("pending")
		gt.True(t, details != "")
	})

	t.Run("no pipeline means no CI", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("[]"))
		})

		state, _, err := client.CIStatus(context.Background(), "guillaume-fix-bug")
		gt.NoError(t, err)
		gt.V(t, state).Equal("")
	})
}

func TestEnableAutoMerge(t *testing.T) {
	t.Run("merge when pipeline succeeds", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPut)
			gt.V(t, r.URL.EscapedPath()).Equal("/projects/group%2Frepo/merge_requests/7/merge")
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			_, _ = w.Write([]byte("{}"))
		})

		gt.NoError(t, client.EnableAutoMerge(context.Background(), "7"))
		gt.V(t, body["merge_when_pipeline_succeeds"]).Equal(true)
		gt.V(t, body["squash"]).Equal(true)
	})
}
