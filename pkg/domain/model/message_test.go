package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

func TestBuildMessage(t *testing.T) {
	identities := model.IdentityMap{
		"gcharbon": "guillaume",
		"marief":   "marie",
	}
	pr := &model.PullRequest{Number: 42, Title: "Fix the flux capacitor", Owner: "gcharbon"}
	reviewURL := "https://reviewable.io/reviews/bayesimpact/web/42"

	t.Run("assignment goes to the reviewer's channel", func(t *testing.T) {
		channel, text, err := model.BuildMessage(model.MessageInput{
			From:       "gcharbon",
			To:         "marief",
			Kind:       model.EventAssigned,
			Action:     model.ActionReview,
			PR:         pr,
			ReviewURL:  reviewURL,
			Identities: identities,
		})
		gt.NoError(t, err)
		gt.V(t, channel).Equal(types.SlackChannel("@marie"))
		gt.True(t, strings.Contains(text, "@guillaume needs your help to review"))
		gt.True(t, strings.Contains(text, "Fix the flux capacitor"))
		gt.True(t, strings.Contains(text, "check this code"))
	})

	t.Run("CI failure tells the owner to check the problem", func(t *testing.T) {
		channel, text, err := model.BuildMessage(model.MessageInput{
			To:         "gcharbon",
			Kind:       model.EventCIFailed,
			Action:     model.ActionCheckCI,
			PR:         pr,
			ReviewURL:  reviewURL,
			Identities: identities,
		})
		gt.NoError(t, err)
		gt.V(t, channel).Equal(types.SlackChannel("@guillaume"))
		gt.True(t, strings.Contains(text, "CI has failed on your change"))
		gt.True(t, strings.Contains(text, "check what the problem is"))
	})

	t.Run("approval invites to submit", func(t *testing.T) {
		_, text, err := model.BuildMessage(model.MessageInput{
			From:       "marief",
			To:         "gcharbon",
			Kind:       model.EventApproved,
			Action:     model.ActionSubmit,
			PR:         pr,
			ReviewURL:  reviewURL,
			Identities: identities,
		})
		gt.NoError(t, err)
		gt.True(t, strings.Contains(text, "@marie has approved your change"))
		gt.True(t, strings.Contains(text, "Let's `git submit`!"))
	})

	t.Run("waiting for other reviewers has no link", func(t *testing.T) {
		_, text, err := model.BuildMessage(model.MessageInput{
			From:       "marief",
			To:         "gcharbon",
			Kind:       model.EventApproved,
			Action:     model.ActionWaitForOtherReviewers,
			PR:         pr,
			ReviewURL:  reviewURL,
			Identities: identities,
		})
		gt.NoError(t, err)
		gt.True(t, strings.Contains(text, "You now need to wait for the other reviewers."))
	})

	t.Run("own comment is rendered as You", func(t *testing.T) {
		_, text, err := model.BuildMessage(model.MessageInput{
			From:       "gcharbon",
			To:         "gcharbon",
			Kind:       model.EventCommented,
			Action:     model.ActionAddressComments,
			PR:         pr,
			ReviewURL:  reviewURL,
			Identities: identities,
		})
		gt.NoError(t, err)
		gt.True(t, strings.Contains(text, "You has commented on your change") ||
			strings.Contains(text, "You have commented on your change"))
	})

	t.Run("unmapped recipient is a setup error", func(t *testing.T) {
		_, _, err := model.BuildMessage(model.MessageInput{
			From:       "gcharbon",
			To:         "paulr",
			Kind:       model.EventAssigned,
			Action:     model.ActionReview,
			PR:         pr,
			ReviewURL:  reviewURL,
			Identities: identities,
		})
		gt.Error(t, err)
		gt.True(t, strings.Contains(err.Error(), "Need to add GitHub user paulr"))
	})
}
