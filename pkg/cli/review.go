package cli

import (
	"context"
	"log/slog"
	"strings"

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

func reviewCommand() *cli.Command {
	var (
		input         model.ReviewInput
		autoMerge     string
		skipOwnRemote bool
		xtrace        bool

		github   config.GitHub
		gitlab   config.GitLab
		calendar config.Calendar
	)
	reviewFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "username",
			Aliases:     []string{"u"},
			Usage:       "Prefix of the remote branch name, defaults to the local part of your git email",
			Sources:     cli.EnvVars("GITREVIEW_USERNAME"),
			Destination: &input.Username,
		},
		&cli.StringFlag{
			Name:        "base",
			Aliases:     []string{"b"},
			Usage:       "Base branch the review targets, inferred when omitted",
			Destination: &input.Base,
		},
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Overwrite the remote branch even if it moved, and skip opening a review request",
			Destination: &input.Force,
		},
		&cli.BoolFlag{
			Name:        "submit",
			Aliases:     []string{"s"},
			Usage:       "Submit the branch right after pushing it",
			Destination: &input.Submit,
		},
		&cli.BoolFlag{
			Name:        "auto-assign",
			Aliases:     []string{"a"},
			Usage:       "Pick a reviewer among available engineers, least recently assigned first",
			Destination: &input.AutoAssign,
		},
		&cli.BoolFlag{
			Name:        "browse",
			Usage:       "Open the existing review in a browser instead of pushing",
			Destination: &input.Browse,
		},
		&cli.StringFlag{
			Name:        "auto-merge",
			Usage:       "Preset the auto-merge answer [yes|no], asked interactively when omitted",
			Sources:     cli.EnvVars("GITREVIEW_AUTO_MERGE"),
			Destination: &autoMerge,
		},
		&cli.BoolFlag{
			Name:        "skip-own-remote",
			Usage:       "Ignore the branch's own remote when inferring the base branch",
			Sources:     cli.EnvVars("GITREVIEW_SKIP_OWN_REMOTE"),
			Destination: &skipOwnRemote,
		},
		&cli.BoolFlag{
			Name:        "xtrace",
			Aliases:     []string{"x"},
			Usage:       "Log each git command before running it",
			Destination: &xtrace,
		},
	}

	return &cli.Command{
		Name:      "review",
		Aliases:   []string{"r"},
		Usage:     "Push the current branch and open or update a review request",
		ArgsUsage: "[reviewer[,reviewer...]]",
		Flags: slice.Flatten(
			reviewFlags,
			github.Flags(),
			gitlab.Flags(),
			calendar.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if reviewers := c.Args().First(); reviewers != "" {
				input.Reviewers = strings.Split(reviewers, ",")
			}

			var gitOptions []gitcli.Option
			if xtrace {
				gitOptions = append(gitOptions, gitcli.WithXtrace("+"))
			}
			git := gitcli.New("", gitOptions...)

			if input.Username == "" {
				input.Username = usernameFromGit(ctx, git)
			}

			logging.Default().Info("starting review",
				slog.Any("Input", input),
				slog.Any("GitHub", github),
				slog.Any("GitLab", gitlab),
				slog.Any("Calendar", calendar),
			)

			store := repository.NewGitConfig(git)
			github.ResolveTeam(ctx, store)

			platform, err := buildPlatform(&github, &gitlab)
			if err != nil {
				return err
			}

			clientOptions := []infra.Option{
				infra.WithGit(git),
				infra.WithPlatform(platform),
				infra.WithConfigStore(store),
			}
			if absence, err := calendar.NewClient(ctx); err != nil {
				return err
			} else if absence != nil {
				clientOptions = append(clientOptions, infra.WithAbsence(absence))
			}

			ucOptions, err := autoMergeOptions(autoMerge)
			if err != nil {
				return err
			}
			if skipOwnRemote {
				ucOptions = append(ucOptions, usecase.WithSkipOwnRemote())
			}

			uc := usecase.New(infra.New(clientOptions...), ucOptions...)
			return uc.Review(ctx, &input)
		},
	}
}
