package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/mock"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/infra"
	"github.com/bayesimpact/gitreview/pkg/usecase"
)

// scriptedGit answers each git invocation from a fixed table keyed by the
// space-joined arguments. Commands listed in fail return an error, like a
// non-zero git exit status.
func scriptedGit(responses map[string]string, fail ...string) *mock.GitClientMock {
	failing := map[string]bool{}
	for _, f := range fail {
		failing[f] = true
	}
	return &mock.GitClientMock{
		OutputFunc: func(ctx context.Context, args ...string) (string, error) {
			key := strings.Join(args, " ")
			if failing[key] {
				return "", goerr.New("git command failed", goerr.V("args", args))
			}
			out, ok := responses[key]
			if !ok {
				return "", goerr.New("unscripted git command", goerr.V("args", args))
			}
			return out, nil
		},
	}
}

func gitCommands(git *mock.GitClientMock) []string {
	var commands []string
	for _, call := range git.OutputCalls() {
		commands = append(commands, strings.Join(call.Args, " "))
	}
	return commands
}

func TestHandleRebase(t *testing.T) {
	ctx := context.Background()
	dflt := model.Branch{Local: "main", Remote: "origin", Merge: "main", Initial: "sha-base"}
	branch := model.Branch{Local: "feature", Remote: "origin", Merge: "guillaume-feature", Initial: "sha-tip"}

	t.Run("branch one commit ahead needs no rebase", func(t *testing.T) {
		git := scriptedGit(map[string]string{
			"rev-parse feature^": "sha-base",
		})
		uc := usecase.New(infra.New(infra.WithGit(git)))

		gt.NoError(t, usecase.HandleRebaseForTest(uc, ctx, dflt, branch, false, false))
		for _, command := range gitCommands(git) {
			gt.False(t, strings.HasPrefix(command, "rebase"))
		}
	})

	t.Run("branch at the upstream tip has nothing to submit", func(t *testing.T) {
		git := scriptedGit(map[string]string{
			"rev-parse feature^": "sha-older",
			"rev-parse feature":  "sha-base",
		})
		uc := usecase.New(infra.New(infra.WithGit(git)))

		err := usecase.HandleRebaseForTest(uc, ctx, dflt, branch, false, false)
		gt.Error(t, err)
		gt.V(t, types.ExitCode(err)).Equal(3)
	})

	t.Run("extra commits already upstream only need a plain rebase", func(t *testing.T) {
		git := scriptedGit(map[string]string{
			"rev-parse feature^":                   "sha-older",
			"rev-parse feature":                    "sha-tip",
			"merge-base --is-ancestor sha-older sha-base": "",
			"rebase origin/main feature":           "",
		})
		uc := usecase.New(infra.New(infra.WithGit(git)))

		gt.NoError(t, usecase.HandleRebaseForTest(uc, ctx, dflt, branch, false, false))

		var rebased bool
		for _, command := range gitCommands(git) {
			if command == "rebase origin/main feature" {
				rebased = true
			}
		}
		gt.True(t, rebased)
	})

	t.Run("multi-commit branch with an open review requires a squash", func(t *testing.T) {
		git := scriptedGit(map[string]string{
			"rev-parse feature^": "sha-mid",
			"rev-parse feature":  "sha-tip",
		}, "merge-base --is-ancestor sha-mid sha-base")
		uc := usecase.New(infra.New(infra.WithGit(git)))

		err := usecase.HandleRebaseForTest(uc, ctx, dflt, branch, false, true)
		gt.V(t, types.ExitCode(err)).Equal(12)
	})

	t.Run("declined rebase stops the submit", func(t *testing.T) {
		git := scriptedGit(map[string]string{
			"rev-parse feature^": "sha-mid",
			"rev-parse feature":  "sha-tip",
		}, "merge-base --is-ancestor sha-mid sha-base")
		prompter := &mock.PrompterMock{
			AskYesNoFunc: func(question string) bool { return false },
		}
		uc := usecase.New(infra.New(infra.WithGit(git), infra.WithPrompter(prompter)))

		err := usecase.HandleRebaseForTest(uc, ctx, dflt, branch, false, false)
		gt.V(t, types.ExitCode(err)).Equal(4)
	})
}

func TestAbort(t *testing.T) {
	ctx := context.Background()

	t.Run("branches are reset and the start branch restored", func(t *testing.T) {
		git := scriptedGit(map[string]string{
			"branch -f feature sha-initial": "",
			"rev-parse --abbrev-ref HEAD":   "feature",
			"checkout -f start":             "",
		})
		uc := usecase.New(infra.New(infra.WithGit(git)))

		branch := model.Branch{Local: "feature", Initial: "sha-initial"}
		err := usecase.AbortForTest(uc, ctx, "start", branch)
		gt.V(t, types.ExitCode(err)).Equal(7)

		commands := gitCommands(git)
		gt.V(t, commands[0]).Equal("branch -f feature sha-initial")
		gt.V(t, commands[len(commands)-1]).Equal("checkout -f start")
	})
}
