package cli

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/cli/config"
	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/infra/localrepo"
	"github.com/bayesimpact/gitreview/pkg/infra/remote"
	"github.com/bayesimpact/gitreview/pkg/usecase"
)

// buildPlatform picks the hosting platform client matching the repository's
// origin remote. A filesystem remote, or no remote at all, gets the no-op
// local platform; an unrecognized host is an error.
func buildPlatform(github *config.GitHub, gitlab *config.GitLab) (interfaces.Platform, error) {
	r, err := remote.Detect(".")
	if err != nil {
		return nil, err
	}

	switch r.Kind {
	case remote.KindGitHub:
		return github.NewClient(r.Owner, r.Name)
	case remote.KindGitLab:
		return gitlab.NewClient(r.Path)
	default:
		if r.Host != "" {
			return nil, goerr.Wrap(types.ErrUnsupportedPlatform, "unrecognized remote host",
				goerr.V("host", r.Host), goerr.V("url", r.URL))
		}
		return localrepo.New(), nil
	}
}

// usernameFromGit derives the default remote branch prefix from the local
// part of the configured git email.
func usernameFromGit(ctx context.Context, git interfaces.GitClient) string {
	email, err := git.Output(ctx, "config", "user.email")
	if err != nil {
		return ""
	}
	username, _, _ := strings.Cut(email, "@")
	return username
}

// autoMergeOptions parses the tri-state auto-merge flag: an empty value
// means ask interactively.
func autoMergeOptions(value string) ([]usecase.Option, error) {
	switch strings.ToLower(value) {
	case "":
		return nil, nil
	case "yes", "true", "1":
		return []usecase.Option{usecase.WithAutoMerge(true)}, nil
	case "no", "false", "0":
		return []usecase.Option{usecase.WithAutoMerge(false)}, nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "auto-merge must be yes or no",
			goerr.V("value", value))
	}
}
