package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/infra/slack"
)

type Slack struct {
	webhookURL types.SlackWebhookURL `masq:"secret"`
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL",
			Category:    "Slack",
			Destination: (*string)(&x.webhookURL),
			Sources:     cli.EnvVars("GITREVIEW_SLACK_WEBHOOK_URL"),
		},
	}
}

// NewClient returns nil without error when no webhook URL is configured, so
// the caller can run without a notifier.
func (x Slack) NewClient() (*slack.Client, error) {
	if x.webhookURL == "" {
		return nil, nil
	}
	return slack.New(x.webhookURL)
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("WebhookURL.len", len(x.webhookURL)),
	)
}
