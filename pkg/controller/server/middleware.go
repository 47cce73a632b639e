package server

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

// preProcess tags each request with an ID, injects a request-scoped logger,
// and writes one access log line per delivery including the webhook event
// headers GitHub sends.
func preProcess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ctx := logging.CtxRequestID(r.Context())
		logger := logging.Default().With(slog.String("request_id", string(requestID)))

		ctx = logging.With(ctx, logger)

		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		startedAt := time.Now()
		next.ServeHTTP(recorder, r.WithContext(ctx))

		logger.Info("http access",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
			slog.Int("status_code", recorder.statusCode),
			slog.String("event", r.Header.Get("X-GitHub-Event")),
			slog.String("delivery", r.Header.Get("X-GitHub-Delivery")),
			slog.Duration("elapsed", time.Since(startedAt)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (x *statusRecorder) WriteHeader(code int) {
	x.statusCode = code
	x.ResponseWriter.WriteHeader(code)
}
