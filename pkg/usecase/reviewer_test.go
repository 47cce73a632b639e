package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/mock"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/infra"
	"github.com/bayesimpact/gitreview/pkg/repository"
	"github.com/bayesimpact/gitreview/pkg/usecase"
)

func engineerPool(logins ...string) []model.Engineer {
	pool := make([]model.Engineer, 0, len(logins))
	for _, login := range logins {
		pool = append(pool, model.Engineer{Login: login, Email: login + "@example.org"})
	}
	return pool
}

func TestPickReviewer(t *testing.T) {
	ctx := context.Background()

	t.Run("least recently assigned engineer wins", func(t *testing.T) {
		platform := &mock.PlatformMock{
			ListEngineersFunc: func(ctx context.Context) ([]model.Engineer, error) {
				return engineerPool("alice", "bob", "carol"), nil
			},
		}
		store := repository.NewMemory()
		gt.NoError(t, store.Set(ctx, "review.recentReviewers", "bob,alice"))

		uc := usecase.New(infra.New(
			infra.WithPlatform(platform),
			infra.WithConfigStore(store),
		))

		// carol was never assigned, she comes first.
		reviewer := gt.R1(usecase.PickReviewerForTest(uc, ctx, "guillaume")).NoError(t)
		gt.V(t, reviewer).Equal("carol")

		gt.NoError(t, usecase.RecordReviewersForTest(uc, ctx, []string{"carol"}))
		recorded := gt.R1(store.Get(ctx, "review.recentReviewers")).NoError(t)
		gt.V(t, recorded).Equal("bob,alice,carol")

		// Everyone has been assigned once, the oldest assignment is next.
		reviewer = gt.R1(usecase.PickReviewerForTest(uc, ctx, "guillaume")).NoError(t)
		gt.V(t, reviewer).Equal("bob")
	})

	t.Run("requester is excluded from the pool", func(t *testing.T) {
		platform := &mock.PlatformMock{
			ListEngineersFunc: func(ctx context.Context) ([]model.Engineer, error) {
				return engineerPool("alice", "guillaume"), nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithPlatform(platform),
			infra.WithConfigStore(repository.NewMemory()),
		))

		reviewer := gt.R1(usecase.PickReviewerForTest(uc, ctx, "guillaume")).NoError(t)
		gt.V(t, reviewer).Equal("alice")
	})

	t.Run("absent engineers are skipped", func(t *testing.T) {
		platform := &mock.PlatformMock{
			ListEngineersFunc: func(ctx context.Context) ([]model.Engineer, error) {
				return engineerPool("alice", "bob"), nil
			},
		}
		absence := &mock.AbsenceSourceMock{
			AbsentEmailsFunc: func(ctx context.Context, emails []string, at time.Time) (map[string]bool, error) {
				return map[string]bool{"alice@example.org": true}, nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithPlatform(platform),
			infra.WithConfigStore(repository.NewMemory()),
			infra.WithAbsence(absence),
		))

		reviewer := gt.R1(usecase.PickReviewerForTest(uc, ctx, "guillaume")).NoError(t)
		gt.V(t, reviewer).Equal("bob")
	})

	t.Run("failed absence lookup keeps the whole pool", func(t *testing.T) {
		platform := &mock.PlatformMock{
			ListEngineersFunc: func(ctx context.Context) ([]model.Engineer, error) {
				return engineerPool("alice"), nil
			},
		}
		absence := &mock.AbsenceSourceMock{
			AbsentEmailsFunc: func(ctx context.Context, emails []string, at time.Time) (map[string]bool, error) {
				return nil, errors.New("calendar is down")
			},
		}
		uc := usecase.New(infra.New(
			infra.WithPlatform(platform),
			infra.WithConfigStore(repository.NewMemory()),
			infra.WithAbsence(absence),
		))

		reviewer := gt.R1(usecase.PickReviewerForTest(uc, ctx, "guillaume")).NoError(t)
		gt.V(t, reviewer).Equal("alice")
	})

	t.Run("empty pool is an error", func(t *testing.T) {
		platform := &mock.PlatformMock{
			ListEngineersFunc: func(ctx context.Context) ([]model.Engineer, error) {
				return engineerPool("guillaume"), nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithPlatform(platform),
			infra.WithConfigStore(repository.NewMemory()),
		))

		gt.R1(usecase.PickReviewerForTest(uc, ctx, "guillaume")).Error(t)
	})
}
