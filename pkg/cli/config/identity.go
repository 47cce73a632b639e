package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
)

type Identity struct {
	raw          string
	adminChannel string
}

func (x *Identity) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "identity-map",
			Usage:       "GitHub-to-Slack login map, a JSON object or comma-separated login=slack pairs",
			Category:    "Identity",
			Destination: &x.raw,
			Sources:     cli.EnvVars("GITREVIEW_IDENTITY_MAP"),
		},
		&cli.StringFlag{
			Name:        "admin-channel",
			Usage:       "Slack channel receiving setup errors instead of failing the notification",
			Category:    "Identity",
			Destination: &x.adminChannel,
			Sources:     cli.EnvVars("GITREVIEW_ADMIN_CHANNEL"),
		},
	}
}

func (x Identity) Parse() (model.IdentityMap, error) {
	return model.ParseIdentityMap(x.raw)
}

func (x Identity) AdminChannel() string {
	return x.adminChannel
}

func (x Identity) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Map.len", len(x.raw)),
		slog.String("AdminChannel", x.adminChannel),
	)
}
