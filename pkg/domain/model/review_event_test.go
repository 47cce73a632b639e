package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
)

func TestReviewCommentMarkers(t *testing.T) {
	t.Run("lgtm as text emoji", func(t *testing.T) {
		c := model.ReviewComment{Body: ":lgtm:"}
		gt.True(t, c.IsLGTM())
	})

	t.Run("lgtm_strong counts too", func(t *testing.T) {
		c := model.ReviewComment{Body: "Great work :lgtm_strong:"}
		gt.True(t, c.IsLGTM())
	})

	t.Run("plain praise is not an approval", func(t *testing.T) {
		c := model.ReviewComment{Body: "looks good to me"}
		gt.False(t, c.IsLGTM())
	})

	t.Run("demo ready announcement", func(t *testing.T) {
		gt.True(t, model.ReviewComment{Body: "Demo ready for review: https://demo.example.com"}.IsDemoReady())
		gt.True(t, model.ReviewComment{Body: "No demo to review"}.IsDemoReady())
		gt.False(t, model.ReviewComment{Body: "demo coming soon"}.IsDemoReady())
	})

	t.Run("assign mentions", func(t *testing.T) {
		c := model.ReviewComment{Body: "+@marief +@paulr please have a look, cc @gcharbon"}
		gt.V(t, c.AssignMentions()).Equal([]string{"marief", "paulr"})
	})

	t.Run("unaddressed discussions from the review trailer", func(t *testing.T) {
		c := model.ReviewComment{Body: ":lgtm:\n\n---\n\nReview status: 3 of 5 files reviewed at latest revision, 2 unresolved discussions."}
		gt.V(t, c.UnaddressedCount()).Equal(2)
	})

	t.Run("all resolved trailer", func(t *testing.T) {
		c := model.ReviewComment{Body: ":lgtm:\n\nReview status: 5 of 5 files reviewed at latest revision, all discussions resolved"}
		gt.V(t, c.UnaddressedCount()).Equal(0)
	})

	t.Run("no trailer counts as addressed", func(t *testing.T) {
		c := model.ReviewComment{Body: "just a comment"}
		gt.V(t, c.UnaddressedCount()).Equal(0)
	})
}

func TestSlackBody(t *testing.T) {
	t.Run("emoji images back to their title", func(t *testing.T) {
		c := model.ReviewComment{Body: `<img class="emoji" title=":lgtm:" alt=":lgtm:" src="https://x/lgtm.png"> nice`}
		gt.V(t, c.SlackBody()).Equal(":lgtm: nice")
	})

	t.Run("markdown links to slack links", func(t *testing.T) {
		c := model.ReviewComment{Body: "see [the doc](https://example.com/doc)"}
		gt.V(t, c.SlackBody()).Equal("see <https://example.com/doc|the doc>")
	})
}

func TestNewCommentEvent(t *testing.T) {
	pr := &model.PullRequest{Number: 42, Title: "Fix the flux capacitor", Owner: "gcharbon"}
	comments := []model.ReviewComment{
		{Author: "gcharbon", Body: "Demo ready for review"},
		{Author: "marief", Body: ":lgtm:"},
	}

	t.Run("trigger is bound to its history entry", func(t *testing.T) {
		event := gt.R1(model.NewCommentEvent(pr, []string{"marief"}, comments, comments[1])).NoError(t)
		gt.V(t, event.TriggerComment.Author).Equal("marief")
		gt.True(t, event.DemoReady())
	})

	t.Run("owner is excluded from assignees", func(t *testing.T) {
		event := gt.R1(model.NewCommentEvent(pr, []string{"gcharbon", "marief"}, comments, comments[0])).NoError(t)
		gt.V(t, event.Assignees).Equal([]string{"marief"})
	})

	t.Run("trigger missing from history is rejected", func(t *testing.T) {
		trigger := model.ReviewComment{Author: "paulr", Body: "late comment"}
		gt.R1(model.NewCommentEvent(pr, nil, comments, trigger)).Error(t)
	})

	t.Run("missing pull request is rejected", func(t *testing.T) {
		gt.R1(model.NewCommentEvent(nil, nil, comments, comments[0])).Error(t)
	})
}

func TestStatusAggregation(t *testing.T) {
	pr := &model.PullRequest{Number: 42, Title: "Fix the flux capacitor", Owner: "gcharbon"}
	t0 := time.Date(2020, 4, 1, 12, 0, 0, 0, time.UTC)

	t.Run("latest entry wins per context and author", func(t *testing.T) {
		statuses := []model.CommitStatus{
			{Context: "ci/circleci", State: model.StatusFailure, Author: "ci", UpdatedAt: t0},
			{Context: "ci/circleci", State: model.StatusSuccess, Author: "ci", UpdatedAt: t0.Add(time.Minute)},
		}
		event := gt.R1(model.NewStatusEvent(pr, nil, statuses, statuses[1])).NoError(t)
		gt.V(t, event.CIState()).Equal(model.StatusSuccess)
	})

	t.Run("any failing context dominates", func(t *testing.T) {
		statuses := []model.CommitStatus{
			{Context: "ci/lint", State: model.StatusSuccess, Author: "ci", UpdatedAt: t0},
			{Context: "ci/tests", State: model.StatusFailure, Author: "ci", UpdatedAt: t0},
		}
		event := gt.R1(model.NewStatusEvent(pr, nil, statuses, statuses[0])).NoError(t)
		gt.V(t, event.CIState()).Equal(model.StatusFailure)
	})

	t.Run("approvers from code-review statuses", func(t *testing.T) {
		statuses := []model.CommitStatus{
			{Context: "code-review/reviewable", State: model.StatusSuccess, Author: "marief", UpdatedAt: t0},
			{Context: "code-review/reviewable", State: model.StatusPending, Author: "paulr", UpdatedAt: t0},
		}
		event := gt.R1(model.NewStatusEvent(pr, nil, statuses, statuses[0])).NoError(t)
		approvers := event.ApproversByStatus()
		gt.True(t, approvers["marief"])
		gt.False(t, approvers["paulr"])
	})

	t.Run("trigger missing from history is rejected", func(t *testing.T) {
		statuses := []model.CommitStatus{
			{Context: "ci/circleci", State: model.StatusSuccess, Author: "ci", UpdatedAt: t0},
		}
		trigger := model.CommitStatus{Context: "ci/other", State: model.StatusSuccess, UpdatedAt: t0}
		gt.R1(model.NewStatusEvent(pr, nil, statuses, trigger)).Error(t)
	})
}
