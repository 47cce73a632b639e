package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

// decision is one (recipient, event, call-to-action) produced by the
// classifier before message rendering.
type decision struct {
	to     string
	kind   model.EventKind
	action model.CallToAction
}

// HandleCommentEvent classifies a new review comment and returns the Slack
// messages to send. Payloads lacking enough data produce an empty set, and
// setup errors are redirected to the admin channel instead of failing the
// delivery.
func (x *UseCase) HandleCommentEvent(ctx context.Context, input *model.CommentNotificationInput) (model.MessageSet, error) {
	if input.Number == 0 || input.Comment.Author == "" {
		logging.From(ctx).Info("comment payload under-specified, ignoring")
		return model.MessageSet{}, nil
	}

	comments, err := x.clients.RelayGitHub().ListIssueComments(
		ctx, input.InstallID, input.Owner, input.Repo, input.Number)
	if err != nil {
		return nil, err
	}

	pr := &model.PullRequest{
		Number: input.Number,
		Title:  input.Title,
		Owner:  input.PROwner,
	}
	event, err := model.NewCommentEvent(pr, input.Assignees, comments, input.Comment)
	if err != nil {
		return x.degrade(ctx, err, input)
	}

	messages, err := x.renderMessages(x.classifyComment(event), event, input.Owner, input.Repo)
	if err != nil {
		return x.degrade(ctx, err, input)
	}
	return messages, nil
}

// HandleStatusEvent classifies a commit status change, keyed by the status
// context prefix: "ci/" statuses talk to the change owner, "code-review/"
// statuses drive the approval flow.
func (x *UseCase) HandleStatusEvent(ctx context.Context, input *model.StatusNotificationInput) (model.MessageSet, error) {
	if input.SHA == "" || input.Context == "" {
		logging.From(ctx).Info("status payload under-specified, ignoring")
		return model.MessageSet{}, nil
	}

	pr, assignees, err := x.clients.RelayGitHub().FindPullRequestForCommit(
		ctx, input.InstallID, input.Owner, input.Repo, input.SHA)
	if err != nil {
		return nil, err
	}
	if pr == nil {
		logging.From(ctx).Info("no open review for this commit, ignoring", "sha", input.SHA)
		return model.MessageSet{}, nil
	}

	statuses, err := x.clients.RelayGitHub().ListStatuses(
		ctx, input.InstallID, input.Owner, input.Repo, string(input.SHA))
	if err != nil {
		return nil, err
	}
	trigger := model.CommitStatus{
		Context:   input.Context,
		State:     input.State,
		Author:    input.Author,
		TargetURL: input.TargetURL,
		UpdatedAt: input.UpdatedAt,
	}
	event, err := model.NewStatusEvent(pr, assignees, statuses, trigger)
	if err != nil {
		return x.degrade(ctx, err, input)
	}

	messages, err := x.renderMessages(x.classifyStatus(event), event, input.Owner, input.Repo)
	if err != nil {
		return x.degrade(ctx, err, input)
	}
	return messages, nil
}

// classifyComment is the comment decision tree: who gets pinged, and with
// which call to action.
func (x *UseCase) classifyComment(event *model.ReviewEvent) []decision {
	if !event.DemoReady() {
		// Don't ping anyone while the demo is not ready.
		return nil
	}

	trigger := *event.TriggerComment
	owner := event.PullRequest.Owner

	if trigger.IsDemoReady() {
		// The demo is now ready, ask the assignees to review it.
		var out []decision
		for _, assignee := range event.Assignees {
			out = append(out, decision{assignee, model.EventAssigned, model.ActionReview})
		}
		return out
	}
	if mentions := trigger.AssignMentions(); len(mentions) > 0 {
		var out []decision
		for _, assignee := range mentions {
			out = append(out, decision{assignee, model.EventAssigned, model.ActionReview})
		}
		return out
	}

	if trigger.Author != owner {
		if !trigger.IsLGTM() {
			return []decision{{owner, model.EventCommented, model.ActionCheckFeedback}}
		}
		unaddressed := trigger.UnaddressedCount()
		if x.everyAssigneeApproved(event) && unaddressed == 0 {
			return []decision{{owner, model.EventApproved, model.ActionSubmit}}
		}
		if unaddressed != 0 {
			return []decision{{owner, model.EventApproved, model.ActionAddressComments}}
		}
		return []decision{{owner, model.EventApproved, model.ActionWaitForOtherReviewers}}
	}

	// The owner wrote some feedback: engaged assignees likely got a
	// response, the others still have to start reviewing.
	var out []decision
	commenters := event.Commenters()
	for _, assignee := range event.Assignees {
		if commenters[assignee] {
			out = append(out, decision{assignee, model.EventResponded, model.ActionCheckFeedback})
		} else {
			out = append(out, decision{assignee, model.EventCommented, model.ActionReview})
		}
	}
	if trigger.UnaddressedCount() > 0 {
		out = append(out, decision{owner, model.EventCommented, model.ActionAddressComments})
	}
	return out
}

// classifyStatus is the status decision tree.
func (x *UseCase) classifyStatus(event *model.ReviewEvent) []decision {
	trigger := *event.TriggerStatus
	owner := event.PullRequest.Owner

	switch {
	case strings.HasPrefix(trigger.Context, model.StatusContextCI):
		switch trigger.State {
		case model.StatusFailure, model.StatusError:
			return []decision{{owner, model.EventCIFailed, model.ActionCheckCI}}
		case model.StatusSuccess:
			if event.CIState() != model.StatusSuccess {
				return nil
			}
			var out []decision
			for _, assignee := range event.Assignees {
				out = append(out, decision{assignee, model.EventCISucceeded, model.ActionReview})
			}
			return out
		}
		return nil

	case strings.HasPrefix(trigger.Context, model.StatusContextCodeReview):
		if trigger.State != model.StatusSuccess {
			return nil
		}
		approvers := event.ApproversByStatus()
		for _, assignee := range event.Assignees {
			if !approvers[assignee] {
				return []decision{{owner, model.EventApproved, model.ActionWaitForOtherReviewers}}
			}
		}
		return []decision{{owner, model.EventApproved, model.ActionSubmit}}
	}
	return nil
}

// everyAssigneeApproved reports whether each assignee gave an approval
// marker and there is at least one assignee.
func (x *UseCase) everyAssigneeApproved(event *model.ReviewEvent) bool {
	if len(event.Assignees) == 0 {
		return false
	}
	givers := event.LGTMGivers()
	for _, assignee := range event.Assignees {
		if !givers[assignee] {
			return false
		}
	}
	return true
}

// renderMessages turns classifier decisions into per-channel Slack text.
func (x *UseCase) renderMessages(decisions []decision, event *model.ReviewEvent, owner, repo string) (model.MessageSet, error) {
	messages := model.MessageSet{}
	from := ""
	if event.TriggerComment != nil {
		from = event.TriggerComment.Author
	}
	if event.TriggerStatus != nil {
		from = event.TriggerStatus.Author
	}
	reviewURL := fmt.Sprintf("https://reviewable.io/reviews/%s/%s/%d", owner, repo, event.PullRequest.Number)

	for _, d := range decisions {
		channel, text, err := model.BuildMessage(model.MessageInput{
			From:       from,
			To:         d.to,
			Kind:       d.kind,
			Action:     d.action,
			PR:         event.PullRequest,
			ReviewURL:  reviewURL,
			Identities: x.identities,
		})
		if err != nil {
			return nil, err
		}
		messages[channel] = text
	}
	return messages, nil
}

// degrade routes a processing failure to the admin channel so the
// notification is never silently dropped. Without an admin channel the
// error propagates.
func (x *UseCase) degrade(ctx context.Context, err error, payload any) (model.MessageSet, error) {
	if x.adminChannel == "" {
		return nil, err
	}
	logging.From(ctx).Warn("notification processing failed, reporting to admin channel",
		"error", err)
	return model.MessageSet{
		types.SlackChannel(x.adminChannel): fmt.Sprintf("Error: %s\n\nWhen processing notification:\n%+v", err.Error(), payload),
	}, nil
}
