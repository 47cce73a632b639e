package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/bayesimpact/gitreview/pkg/cli/config"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/infra"
	"github.com/bayesimpact/gitreview/pkg/infra/gitcli"
	"github.com/bayesimpact/gitreview/pkg/repository"
	"github.com/bayesimpact/gitreview/pkg/usecase"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

func submitCommand() *cli.Command {
	var (
		input     model.SubmitInput
		autoMerge string
		xtrace    bool

		github config.GitHub
		gitlab config.GitLab
	)
	submitFlags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Submit even when CI is not successful, and squash without asking",
			Destination: &input.Force,
		},
		&cli.BoolFlag{
			Name:        "abort",
			Aliases:     []string{"a"},
			Usage:       "Cancel a pending auto-merge instead of submitting",
			Destination: &input.Abort,
		},
		&cli.StringFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "Remote branch prefix, defaults to the local part of your git email",
			Sources:     cli.EnvVars("GITREVIEW_USERNAME"),
			Destination: &input.User,
		},
		&cli.BoolFlag{
			Name:        "rebase",
			Usage:       "Run the squash rebase without asking",
			Destination: &input.Rebase,
		},
		&cli.StringFlag{
			Name:        "auto-merge",
			Usage:       "Preset the auto-merge answer [yes|no], asked interactively when omitted",
			Sources:     cli.EnvVars("GITREVIEW_AUTO_MERGE"),
			Destination: &autoMerge,
		},
		&cli.BoolFlag{
			Name:        "xtrace",
			Aliases:     []string{"x"},
			Usage:       "Log each git command before running it",
			Destination: &xtrace,
		},
	}

	return &cli.Command{
		Name:      "submit",
		Aliases:   []string{"sb"},
		Usage:     "Squash, merge, and clean up a reviewed branch",
		ArgsUsage: "[branch]",
		Flags: slice.Flatten(
			submitFlags,
			github.Flags(),
			gitlab.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			input.Branch = c.Args().First()

			var gitOptions []gitcli.Option
			if xtrace {
				gitOptions = append(gitOptions, gitcli.WithXtrace("+"))
			}
			git := gitcli.New("", gitOptions...)

			logging.Default().Info("starting submit",
				slog.Any("Input", input),
				slog.Any("GitHub", github),
				slog.Any("GitLab", gitlab),
			)

			platform, err := buildPlatform(&github, &gitlab)
			if err != nil {
				return err
			}

			ucOptions, err := autoMergeOptions(autoMerge)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGit(git),
				infra.WithPlatform(platform),
				infra.WithConfigStore(repository.NewGitConfig(git)),
			)
			uc := usecase.New(clients, ucOptions...)
			return uc.Submit(ctx, &input)
		},
	}
}
