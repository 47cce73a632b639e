package slack_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/infra/slack"
)

func TestPost(t *testing.T) {
	t.Run("payload reaches the webhook", func(t *testing.T) {
		var received map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := gt.R1(io.ReadAll(r.Body)).NoError(t)
			gt.NoError(t, json.Unmarshal(body, &received))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := gt.R1(slack.New(types.SlackWebhookURL(srv.URL))).NoError(t)
		gt.NoError(t, client.Post(context.Background(), "@marie", "please review"))

		gt.V(t, received["channel"]).Equal("@marie")
		gt.V(t, received["text"]).Equal("please review")
	})

	t.Run("non-200 response is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "invalid_payload", http.StatusBadRequest)
		}))
		defer srv.Close()

		client := gt.R1(slack.New(types.SlackWebhookURL(srv.URL))).NoError(t)
		gt.Error(t, client.Post(context.Background(), "@marie", "please review"))
	})

	t.Run("empty webhook URL is rejected", func(t *testing.T) {
		gt.R1(slack.New("")).Error(t)
	})
}
