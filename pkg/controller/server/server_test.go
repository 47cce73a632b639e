package server_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/controller/server"
	"github.com/bayesimpact/gitreview/pkg/domain/mock"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/infra"
	"github.com/bayesimpact/gitreview/pkg/usecase"
)

func postWebhook(srv *server.Server, event string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	rec := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rec, req)
	return rec
}

func TestRouterSmokeTests(t *testing.T) {
	t.Run("GET / names the service", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()), nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("gitreview notification relay")
	})

	t.Run("GET /health returns 200", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()), nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		srv.Mux().ServeHTTP(rec, req)

		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, rec.Body.String()).Equal("ok")
	})
}

func TestGitHubWebhook(t *testing.T) {
	issueCommentBody := []byte(`{
		"action": "created",
		"issue": {
			"number": 42,
			"title": "Fix the flux capacitor",
			"user": {"login": "gcharbon"},
			"assignees": [{"login": "marief"}]
		},
		"comment": {"user": {"login": "marief"}, "body": ":lgtm:"},
		"repository": {"name": "web", "owner": {"login": "bayesimpact"}},
		"installation": {"id": 12}
	}`)

	t.Run("unsigned delivery is rejected when a secret is set", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()), nil,
			server.WithGitHubSecret(types.GitHubAppSecret("webhook-secret")))

		rec := postWebhook(srv, "issue_comment", issueCommentBody)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})

	t.Run("issue comment is classified and posted", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			HandleCommentEventFunc: func(ctx context.Context, input *model.CommentNotificationInput) (model.MessageSet, error) {
				gt.V(t, input.Number).Equal(42)
				gt.V(t, input.PROwner).Equal("gcharbon")
				gt.V(t, input.Comment.Author).Equal("marief")
				gt.V(t, input.Assignees).Equal([]string{"marief"})
				return model.MessageSet{"@guillaume": "approved"}, nil
			},
		}
		notifier := &mock.NotifierMock{
			PostFunc: func(ctx context.Context, channel types.SlackChannel, text string) error {
				return nil
			},
		}
		srv := server.New(mockUC, notifier)

		rec := postWebhook(srv, "issue_comment", issueCommentBody)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.True(t, strings.Contains(rec.Body.String(), "@guillaume"))

		posts := notifier.PostCalls()
		gt.V(t, len(posts)).Equal(1)
		gt.V(t, posts[0].Channel).Equal(types.SlackChannel("@guillaume"))
		gt.V(t, posts[0].Text).Equal("approved")
	})

	t.Run("status event drives the status handler", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			HandleStatusEventFunc: func(ctx context.Context, input *model.StatusNotificationInput) (model.MessageSet, error) {
				gt.V(t, string(input.SHA)).Equal("abc123")
				gt.V(t, input.Context).Equal("ci/circleci")
				gt.V(t, input.State).Equal("failure")
				return model.MessageSet{}, nil
			},
		}
		srv := server.New(mockUC, nil)

		body := []byte(`{
			"sha": "abc123",
			"context": "ci/circleci",
			"state": "failure",
			"sender": {"login": "gcharbon"},
			"repository": {"name": "web", "owner": {"login": "bayesimpact"}},
			"installation": {"id": 12}
		}`)
		rec := postWebhook(srv, "status", body)
		gt.V(t, rec.Code).Equal(http.StatusOK)
		gt.V(t, len(mockUC.HandleStatusEventCalls())).Equal(1)
	})

	t.Run("edited comments are ignored", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			HandleCommentEventFunc: func(ctx context.Context, input *model.CommentNotificationInput) (model.MessageSet, error) {
				t.Fatal("edited comment must not reach the use case")
				return nil, nil
			},
		}
		srv := server.New(mockUC, nil)

		body := bytes.Replace(issueCommentBody, []byte(`"created"`), []byte(`"edited"`), 1)
		rec := postWebhook(srv, "issue_comment", body)
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("unsupported event type is a no-op", func(t *testing.T) {
		srv := server.New(usecase.New(infra.New()), nil)

		rec := postWebhook(srv, "push", []byte(`{"ref": "refs/heads/main"}`))
		gt.V(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("failed delivery surfaces as a server error", func(t *testing.T) {
		mockUC := &mock.UseCaseMock{
			HandleCommentEventFunc: func(ctx context.Context, input *model.CommentNotificationInput) (model.MessageSet, error) {
				return model.MessageSet{"@guillaume": "approved"}, nil
			},
		}
		notifier := &mock.NotifierMock{
			PostFunc: func(ctx context.Context, channel types.SlackChannel, text string) error {
				return errors.New("slack is down")
			},
		}
		srv := server.New(mockUC, notifier)

		rec := postWebhook(srv, "issue_comment", issueCommentBody)
		gt.V(t, rec.Code).Equal(http.StatusInternalServerError)
	})
}
