package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/infra/githubapi"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

const teamCacheKey = "review.githubTeam"

type GitHub struct {
	token    types.GitHubToken `masq:"secret"`
	team     string
	cacheTTL time.Duration
	noCache  bool
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GITREVIEW_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-team",
			Usage:       "Organization team slug used as the reviewer pool",
			Category:    "GitHub",
			Destination: &x.team,
			Sources:     cli.EnvVars("GITREVIEW_GITHUB_TEAM"),
		},
		&cli.DurationFlag{
			Name:        "github-cache-ttl",
			Usage:       "Lifetime of cached GitHub responses, 0 disables the cache",
			Category:    "GitHub",
			Destination: &x.cacheTTL,
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("GITREVIEW_GITHUB_CACHE_TTL"),
		},
		&cli.BoolFlag{
			Name:        "no-cache",
			Usage:       "Bypass cached GitHub responses for this invocation",
			Category:    "GitHub",
			Destination: &x.noCache,
		},
	}
}

// ResolveTeam fills the team slug from the config store when the flag did
// not set one, and records a freshly given slug for later invocations.
func (x *GitHub) ResolveTeam(ctx context.Context, store interfaces.ConfigStore) {
	if x.team != "" {
		if err := store.Set(ctx, teamCacheKey, x.team); err != nil {
			logging.From(ctx).Warn("could not cache team slug", "error", err)
		}
		return
	}
	if team, err := store.Get(ctx, teamCacheKey); err == nil {
		x.team = team
	}
}

func (x GitHub) NewClient(owner, repo string) (*githubapi.Client, error) {
	ttl := x.cacheTTL
	if x.noCache {
		ttl = 0
	}
	options := []githubapi.Option{
		githubapi.WithCacheTTL(ttl),
	}
	if x.team != "" {
		options = append(options, githubapi.WithTeam(x.team))
	}
	return githubapi.New(x.token, owner, repo, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("Team", x.team),
		slog.Duration("CacheTTL", x.cacheTTL),
	)
}
