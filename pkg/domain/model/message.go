package model

import (
	"fmt"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// EventKind is what happened on the review, from the recipient's point of
// view.
type EventKind string

const (
	EventAssigned    EventKind = "ASSIGNED"
	EventCommented   EventKind = "COMMENTED"
	EventResponded   EventKind = "RESPONDED"
	EventApproved    EventKind = "APPROVED"
	EventCIFailed    EventKind = "CI_FAILED"
	EventCISucceeded EventKind = "CI_SUCCEEDED"
)

// CallToAction is what the recipient should do next.
type CallToAction string

const (
	ActionReview                CallToAction = "REVIEW"
	ActionSubmit                CallToAction = "SUBMIT"
	ActionCheckFeedback         CallToAction = "CHECK_FEEDBACK"
	ActionCheckChange           CallToAction = "CHECK_CHANGE"
	ActionAddressComments       CallToAction = "ADDRESS_COMMENTS"
	ActionWaitForOtherReviewers CallToAction = "WAIT_FOR_OTHER_REVIEWERS"
	ActionCheckCI               CallToAction = "CHECK_CI"
)

// MessageSet maps each recipient channel to the message it should receive.
type MessageSet map[types.SlackChannel]string

// MessageInput is one (recipient, event, call-to-action) decision to turn
// into a Slack message.
type MessageInput struct {
	// From is the login that triggered the event. Empty for CI events.
	From string
	// To is the login of the recipient.
	To         string
	Kind       EventKind
	Action     CallToAction
	PR         *PullRequest
	ReviewURL  string
	Identities IdentityMap
}

var eventTemplates = map[EventKind]string{
	EventAssigned:  "%s needs your help to review %s",
	EventCommented: "%s has commented on %s",
	EventResponded: "%s has responded to comments on %s",
	EventApproved:  "%s has approved %s",
}

var ctaTemplates = map[CallToAction]string{
	ActionReview:          "Let's <%s|check this code>!",
	ActionSubmit:          "Let's `git submit`!",
	ActionCheckFeedback:   "Let's <%s|check their feedback>!",
	ActionCheckChange:     "Let's <%s|check what they have changed>!",
	ActionAddressComments: "Let's <%s|address the remaining comments>",
	ActionCheckCI:         "Let's <%s|check what the problem is>!",
}

// BuildMessage renders one Slack message and the channel it goes to.
func BuildMessage(in MessageInput) (types.SlackChannel, string, error) {
	slackLogin, err := in.Identities.Lookup(in.To)
	if err != nil {
		return "", "", err
	}
	channel := types.SlackChannel("@" + slackLogin)

	whose, err := possessive(in.PR.Owner, in.From, in.To, in.Identities)
	if err != nil {
		return "", "", err
	}
	whoseChange := fmt.Sprintf("%s change <%s|%s>", whose, in.ReviewURL, in.PR.Title)

	var event string
	switch in.Kind {
	case EventCIFailed:
		event = fmt.Sprintf("CI has failed on %s", whoseChange)
	case EventCISucceeded:
		event = fmt.Sprintf("CI is green on %s", whoseChange)
	default:
		who, err := mentionOrYou(in.From, in.To, in.Identities)
		if err != nil {
			return "", "", err
		}
		event = fmt.Sprintf(eventTemplates[in.Kind], who, whoseChange)
	}

	var cta string
	switch in.Action {
	case ActionSubmit:
		cta = ctaTemplates[ActionSubmit]
	case ActionWaitForOtherReviewers:
		cta = "You now need to wait for the other reviewers."
	default:
		cta = fmt.Sprintf(ctaTemplates[in.Action], in.ReviewURL)
	}

	return channel, fmt.Sprintf("_%s:_\n%s", event, cta), nil
}

func mentionOrYou(from, to string, identities IdentityMap) (string, error) {
	if from == to {
		return "You", nil
	}
	slackLogin, err := identities.Lookup(from)
	if err != nil {
		return "", err
	}
	return "@" + slackLogin, nil
}

func possessive(owner, from, to string, identities IdentityMap) (string, error) {
	switch owner {
	case to:
		return "your", nil
	case from:
		return "their", nil
	}
	slackLogin, err := identities.Lookup(owner)
	if err != nil {
		return "", err
	}
	return "@" + slackLogin + "'s", nil
}
