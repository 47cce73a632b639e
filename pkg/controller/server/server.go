package server

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/errutil"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret types.GitHubAppSecret
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

func New(uc interfaces.UseCase, notifier interfaces.Notifier, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("gitreview notification relay"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			messages, err := handleGitHubEvent(r, uc, cfg.ghSecret)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to handle GitHub event", err)
				safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
				return
			}

			// Detached so a dropped webhook connection cannot cancel a
			// half-delivered message set.
			if err := postMessages(DetachContext(r.Context()), notifier, messages); err != nil {
				errutil.HandleError(r.Context(), "fail to post Slack messages", err)
				safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
				return
			}

			body, err := json.Marshal(messages)
			if err != nil {
				safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
				return
			}
			w.Header().Set("Content-Type", "application/json")
			safeWrite(w, http.StatusOK, body)
		})
	})

	return &Server{
		mux: r,
	}
}

// postMessages delivers each generated message to its channel. Delivery
// stops at the first failing channel so the webhook sender can retry.
func postMessages(ctx context.Context, notifier interfaces.Notifier, messages model.MessageSet) error {
	if notifier == nil {
		return nil
	}
	for channel, text := range messages {
		if err := notifier.Post(ctx, channel, text); err != nil {
			return goerr.Wrap(err, "posting to Slack", goerr.V("channel", channel))
		}
	}
	return nil
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
