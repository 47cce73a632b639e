package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/bayesimpact/gitreview/pkg/infra/calendar"
)

type Calendar struct {
	credentialsFile string
}

func (x *Calendar) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "calendar-credentials",
			Usage:       "Google service account credentials file for absence lookups",
			Category:    "Calendar",
			Destination: &x.credentialsFile,
			Sources:     cli.EnvVars("GITREVIEW_CALENDAR_CREDENTIALS"),
		},
	}
}

// NewClient returns nil without error when no credentials are configured;
// reviewer picking then skips the absence filter.
func (x Calendar) NewClient(ctx context.Context) (*calendar.Client, error) {
	if x.credentialsFile == "" {
		return nil, nil
	}
	return calendar.New(ctx, x.credentialsFile)
}

func (x Calendar) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("CredentialsFile", x.credentialsFile),
	)
}
