package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/bayesimpact/gitreview/pkg/cli/config"
	"github.com/bayesimpact/gitreview/pkg/controller/server"
	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/infra"
	"github.com/bayesimpact/gitreview/pkg/usecase"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

func serveCommand() *cli.Command {
	var (
		addr string

		githubApp config.GitHubApp
		slackCfg  config.Slack
		identity  config.Identity
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("GITREVIEW_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Relay GitHub review events to Slack",
		Flags: slice.Flatten(
			serveFlags,
			githubApp.Flags(),
			slackCfg.Flags(),
			identity.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHubApp", githubApp),
				slog.Any("Slack", slackCfg),
				slog.Any("Identity", identity),
				slog.Any("Sentry", sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			identities, err := identity.Parse()
			if err != nil {
				return err
			}

			var notifier interfaces.Notifier
			if slackClient, err := slackCfg.NewClient(); err != nil {
				return err
			} else if slackClient != nil {
				notifier = slackClient
			}

			clients := infra.New(
				infra.WithRelayGitHub(ghApp),
			)
			uc := usecase.New(clients,
				usecase.WithIdentities(identities),
				usecase.WithAdminChannel(identity.AdminChannel()),
			)
			s := server.New(uc, notifier, server.WithGitHubSecret(githubApp.Secret()))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
