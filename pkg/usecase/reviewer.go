package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

const (
	keyRecentReviewers = "review.recentReviewers"
	keyEmailPrefix     = "review.email."
)

// pickReviewer chooses the next reviewer by round-robin: the candidate pool
// is the platform's engineers minus the requester and anyone currently
// absent, ordered so that the least-recently-assigned engineer comes first.
func (x *UseCase) pickReviewer(ctx context.Context, username string) (string, error) {
	engineers, err := x.clients.Platform().ListEngineers(ctx)
	if err != nil {
		return "", err
	}

	var pool []model.Engineer
	for _, e := range engineers {
		if e.Login == username || strings.HasPrefix(e.Email, username+"@") {
			continue
		}
		pool = append(pool, e)
	}

	pool = x.filterAbsent(ctx, pool)
	if len(pool) == 0 {
		return "", goerr.Wrap(types.ErrNoReviewerAvailable, "")
	}

	recent := x.recentReviewers(ctx)
	recency := map[string]int{}
	for i, login := range recent {
		recency[login] = i
	}

	// Engineers never assigned before come first, then by oldest prior
	// assignment.
	best := pool[0]
	bestRank := rankOf(best.Login, recency)
	for _, e := range pool[1:] {
		if rank := rankOf(e.Login, recency); rank < bestRank {
			best, bestRank = e, rank
		}
	}
	return best.Login, nil
}

func rankOf(login string, recency map[string]int) int {
	if rank, ok := recency[login]; ok {
		return rank
	}
	return -1
}

// filterAbsent removes the engineers the absence source marks as away right
// now. When the lookup is not configured or fails, absence data is ignored
// and the pool is returned unchanged.
func (x *UseCase) filterAbsent(ctx context.Context, pool []model.Engineer) []model.Engineer {
	if x.clients.Absence() == nil {
		return pool
	}

	emails := map[string]string{}
	for _, e := range pool {
		if email := x.emailFor(ctx, e); email != "" {
			emails[e.Login] = email
		}
	}
	if len(emails) == 0 {
		return pool
	}

	all := make([]string, 0, len(emails))
	for _, email := range emails {
		all = append(all, email)
	}
	absent, err := x.clients.Absence().AbsentEmails(ctx, all, logging.CtxTime(ctx))
	if err != nil {
		logging.From(ctx).Warn("absence lookup failed, ignoring absence data", "error", err)
		return pool
	}

	var present []model.Engineer
	for _, e := range pool {
		if absent[emails[e.Login]] {
			continue
		}
		present = append(present, e)
	}
	return present
}

// emailFor resolves the email of an engineer for the absence lookup, from
// the platform profile, the config store, or an interactive prompt.
func (x *UseCase) emailFor(ctx context.Context, e model.Engineer) string {
	if e.Email != "" {
		return e.Email
	}
	if email, err := x.clients.ConfigStore().Get(ctx, keyEmailPrefix+e.Login); err == nil {
		return email
	}

	email, err := x.clients.Prompter().ReadLine("Email for " + e.Login + " (leave empty to skip): ")
	if err != nil || email == "" {
		return ""
	}
	if err := x.clients.ConfigStore().Set(ctx, keyEmailPrefix+e.Login, email); err != nil {
		logging.From(ctx).Warn("could not record email mapping", "login", e.Login, "error", err)
	}
	return email
}

// recentReviewers returns prior assignments ordered oldest first.
func (x *UseCase) recentReviewers(ctx context.Context) []string {
	value, err := x.clients.ConfigStore().Get(ctx, keyRecentReviewers)
	if err != nil || value == "" {
		return nil
	}
	return strings.Split(value, ",")
}

// recordReviewers appends the chosen reviewers to the recency list, keeping
// one entry per login.
func (x *UseCase) recordReviewers(ctx context.Context, reviewers []string) error {
	if len(reviewers) == 0 {
		return nil
	}
	chosen := map[string]bool{}
	for _, r := range reviewers {
		chosen[r] = true
	}

	var recent []string
	for _, login := range x.recentReviewers(ctx) {
		if !chosen[login] {
			recent = append(recent, login)
		}
	}
	recent = append(recent, reviewers...)
	return x.clients.ConfigStore().Set(ctx, keyRecentReviewers, strings.Join(recent, ","))
}
