package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/bayesimpact/gitreview/pkg/infra/gitlabapi"
)

type GitLab struct {
	token   string `masq:"secret"`
	baseURL string
}

func (x *GitLab) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gitlab-token",
			Usage:       "GitLab API token",
			Category:    "GitLab",
			Destination: &x.token,
			Sources:     cli.EnvVars("GITREVIEW_GITLAB_TOKEN", "GITLAB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "gitlab-base-url",
			Usage:       "GitLab API base URL, for self-hosted instances",
			Category:    "GitLab",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("GITREVIEW_GITLAB_BASE_URL"),
		},
	}
}

// NewClient builds a client for one project, given as its full namespaced
// path such as "group/repo".
func (x GitLab) NewClient(project string) (*gitlabapi.Client, error) {
	var options []gitlabapi.Option
	if x.baseURL != "" {
		options = append(options, gitlabapi.WithBaseURL(x.baseURL))
	}
	return gitlabapi.New(x.token, project, options...)
}

func (x GitLab) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("Token.len", len(x.token)),
		slog.String("BaseURL", x.baseURL),
	)
}
