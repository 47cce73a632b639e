package repository_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/mock"
	"github.com/bayesimpact/gitreview/pkg/repository"
)

func configGit(values map[string]string) *mock.GitClientMock {
	return &mock.GitClientMock{
		OutputFunc: func(ctx context.Context, args ...string) (string, error) {
			key := strings.Join(args, " ")
			if out, ok := values[key]; ok {
				return out, nil
			}
			return "", goerr.New("exit status 1")
		},
	}
}

func TestGitConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("get existing key", func(t *testing.T) {
		store := repository.NewGitConfig(configGit(map[string]string{
			"config --get review.recentReviewers": "alice,bob",
		}))
		value := gt.R1(store.Get(ctx, "review.recentReviewers")).NoError(t)
		gt.V(t, value).Equal("alice,bob")
	})

	t.Run("missing key reports not found", func(t *testing.T) {
		store := repository.NewGitConfig(configGit(nil))
		_, err := store.Get(ctx, "review.recentReviewers")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})

	t.Run("set writes to the local scope", func(t *testing.T) {
		git := configGit(map[string]string{
			"config review.recentReviewers alice": "",
		})
		store := repository.NewGitConfig(git)
		gt.NoError(t, store.Set(ctx, "review.recentReviewers", "alice"))
	})

	t.Run("global scope is opt-in", func(t *testing.T) {
		git := configGit(map[string]string{
			"config --global --get review.email.alice": "alice@example.org",
		})
		store := repository.NewGitConfig(git, repository.WithGlobal())
		value := gt.R1(store.Get(ctx, "review.email.alice")).NoError(t)
		gt.V(t, value).Equal("alice@example.org")
	})

	t.Run("unsetting a missing key is not an error", func(t *testing.T) {
		store := repository.NewGitConfig(configGit(nil))
		gt.NoError(t, store.Unset(ctx, "review.recentReviewers"))
	})
}

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		store := repository.NewMemory()
		gt.NoError(t, store.Set(ctx, "review.recentReviewers", "alice"))
		value := gt.R1(store.Get(ctx, "review.recentReviewers")).NoError(t)
		gt.V(t, value).Equal("alice")

		gt.NoError(t, store.Unset(ctx, "review.recentReviewers"))
		_, err := store.Get(ctx, "review.recentReviewers")
		gt.True(t, errors.Is(err, repository.ErrNotFound))
	})
}
