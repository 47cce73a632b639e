package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/mock"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/infra"
	"github.com/bayesimpact/gitreview/pkg/repository"
	"github.com/bayesimpact/gitreview/pkg/usecase"
)

// reviewGitScript covers the git calls of a review of the untracked local
// branch fix-bug, one commit ahead of origin/main. The repository top level
// points at an empty directory so no review hook runs.
func reviewGitScript(t *testing.T, log string) map[string]string {
	return map[string]string{
		"rev-parse --abbrev-ref HEAD":              "fix-bug",
		"config branch.main.remote":                "origin",
		"rev-parse --abbrev-ref origin/HEAD":       "origin/main",
		"diff HEAD --exit-code":                    "",
		"rev-list --max-count=5 fix-bug":           "sha1\nsha0",
		"branch -r --contains sha1 --list origin/*": "  origin/main",
		"merge-base HEAD origin/main":              "sha0",
		"push -f -u origin fix-bug:guillaume-fix-bug": "",
		"log --format=%B main..fix-bug":            log,
		"rev-parse --show-toplevel":                t.TempDir(),
	}
}

func TestReview(t *testing.T) {
	ctx := context.Background()

	t.Run("existing review only refreshes the reviewers", func(t *testing.T) {
		git := scriptedGit(reviewGitScript(t, "Fix bug\n\nDetails."),
			"config branch.fix-bug.merge", "diff --quiet sha0")
		existing := &model.PullRequest{Number: 7, Title: "Fix bug", Owner: "gcharbon"}
		platform := &mock.PlatformMock{
			FindReviewRequestFunc: func(ctx context.Context, headRef, baseRef string) (*model.PullRequest, error) {
				gt.V(t, headRef).Equal("guillaume-fix-bug")
				gt.V(t, baseRef).Equal("main")
				return existing, nil
			},
			UpdateReviewersFunc: func(ctx context.Context, number int, reviewers []string) error {
				return nil
			},
		}
		store := repository.NewMemory()
		uc := usecase.New(infra.New(
			infra.WithGit(git),
			infra.WithPlatform(platform),
			infra.WithConfigStore(store),
		))

		gt.NoError(t, uc.Review(ctx, &model.ReviewInput{
			Username:  "guillaume",
			Reviewers: []string{"marief"},
		}))

		gt.V(t, len(platform.CreateReviewRequestCalls())).Equal(0)
		updates := platform.UpdateReviewersCalls()
		gt.V(t, len(updates)).Equal(1)
		gt.V(t, updates[0].Number).Equal(7)
		gt.V(t, updates[0].Reviewers).Equal([]string{"marief"})

		recorded := gt.R1(store.Get(ctx, "review.recentReviewers")).NoError(t)
		gt.V(t, recorded).Equal("marief")
	})

	t.Run("first review opens a request from the commit log", func(t *testing.T) {
		git := scriptedGit(reviewGitScript(t, "Fix bug\n\nDetails.\n\nFix: #12, #34"),
			"config branch.fix-bug.merge", "diff --quiet sha0")
		platform := &mock.PlatformMock{
			FindReviewRequestFunc: func(ctx context.Context, headRef, baseRef string) (*model.PullRequest, error) {
				return nil, nil
			},
			CreateReviewRequestFunc: func(ctx context.Context, input *model.CreateReviewRequestInput) (*model.PullRequest, error) {
				return &model.PullRequest{Number: 8, Title: input.Title}, nil
			},
			ReviewURLFunc: func(number int) string {
				return fmt.Sprintf("https://reviewable.io/reviews/bayesimpact/web/%d", number)
			},
			LabelIssueFunc: func(ctx context.Context, number int, label string) error {
				return nil
			},
		}
		store := repository.NewMemory()
		uc := usecase.New(infra.New(
			infra.WithGit(git),
			infra.WithPlatform(platform),
			infra.WithConfigStore(store),
		))

		gt.NoError(t, uc.Review(ctx, &model.ReviewInput{
			Username:  "guillaume",
			Reviewers: []string{"marief"},
		}))

		creations := platform.CreateReviewRequestCalls()
		gt.V(t, len(creations)).Equal(1)
		gt.V(t, creations[0].Input.Title).Equal("Fix bug")
		gt.V(t, creations[0].Input.HeadRef).Equal("guillaume-fix-bug")
		gt.V(t, creations[0].Input.BaseRef).Equal("main")
		gt.V(t, creations[0].Input.Reviewers).Equal([]string{"marief"})

		labels := platform.LabelIssueCalls()
		gt.V(t, len(labels)).Equal(2)
		gt.V(t, labels[0].Number).Equal(12)
		gt.V(t, labels[1].Number).Equal(34)
		gt.V(t, labels[0].Label).Equal("in review")
	})

	t.Run("branch without changes is rejected", func(t *testing.T) {
		script := reviewGitScript(t, "")
		script["diff --quiet sha0"] = ""
		git := scriptedGit(script, "config branch.fix-bug.merge")
		uc := usecase.New(infra.New(
			infra.WithGit(git),
			infra.WithPlatform(&mock.PlatformMock{}),
			infra.WithConfigStore(repository.NewMemory()),
		))

		err := uc.Review(ctx, &model.ReviewInput{Username: "guillaume"})
		gt.V(t, types.ExitCode(err)).Equal(3)
	})

	t.Run("missing username is a setup error", func(t *testing.T) {
		uc := usecase.New(infra.New())
		gt.Error(t, uc.Review(ctx, &model.ReviewInput{}))
	})

	t.Run("tracked branch keeps its remote name", func(t *testing.T) {
		script := reviewGitScript(t, "Improve tests")
		script["config branch.fix-bug.merge"] = "refs/heads/marie-fix-bug"
		script["push -u origin fix-bug:marie-fix-bug"] = ""
		git := scriptedGit(script, "diff --quiet sha0")
		platform := &mock.PlatformMock{
			FindReviewRequestFunc: func(ctx context.Context, headRef, baseRef string) (*model.PullRequest, error) {
				gt.V(t, headRef).Equal("marie-fix-bug")
				return &model.PullRequest{Number: 9}, nil
			},
			UpdateReviewersFunc: func(ctx context.Context, number int, reviewers []string) error {
				return nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithGit(git),
			infra.WithPlatform(platform),
			infra.WithConfigStore(repository.NewMemory()),
		))

		gt.NoError(t, uc.Review(ctx, &model.ReviewInput{Username: "marie"}))
		gt.V(t, len(platform.FindReviewRequestCalls())).Equal(1)
	})
}
