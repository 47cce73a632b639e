package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ReviewComment is one comment of a review thread.
type ReviewComment struct {
	Author    string
	Body      string
	CreatedAt time.Time
}

// CommitStatus is one CI or code-review status entry attached to the head
// commit of a review.
type CommitStatus struct {
	// Context is the status name, such as "ci/circleci" or
	// "code-review/reviewable".
	Context   string
	State     string
	Author    string
	TargetURL string
	UpdatedAt time.Time
}

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
	StatusPending = "pending"
)

const (
	StatusContextCI         = "ci/"
	StatusContextCodeReview = "code-review/"
)

// ReviewEvent is an immutable snapshot derived from one webhook delivery:
// the review it concerns, the accumulated comment and status history, and
// the one entry that triggered the delivery. Exactly one of TriggerComment
// and TriggerStatus is set, and it is always part of the matching history.
type ReviewEvent struct {
	PullRequest *PullRequest
	Assignees   []string
	Comments    []ReviewComment
	Statuses    []CommitStatus

	TriggerComment *ReviewComment
	TriggerStatus  *CommitStatus
}

// NewCommentEvent builds a ReviewEvent for a freshly posted comment. The
// trigger must be present in the comment history.
func NewCommentEvent(pr *PullRequest, assignees []string, comments []ReviewComment, trigger ReviewComment) (*ReviewEvent, error) {
	if pr == nil {
		return nil, goerr.Wrap(types.ErrNotEnoughData, "comment event without pull request")
	}
	idx := -1
	for i, c := range comments {
		if c.Author == trigger.Author && c.Body == trigger.Body {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, goerr.New("trigger comment is not part of the comment history",
			goerr.V("author", trigger.Author))
	}

	return &ReviewEvent{
		PullRequest:    pr,
		Assignees:      excludeLogin(assignees, pr.Owner),
		Comments:       comments,
		TriggerComment: &comments[idx],
	}, nil
}

// NewStatusEvent builds a ReviewEvent for a commit status change. The
// trigger must be present in the status history.
func NewStatusEvent(pr *PullRequest, assignees []string, statuses []CommitStatus, trigger CommitStatus) (*ReviewEvent, error) {
	if pr == nil {
		return nil, goerr.Wrap(types.ErrNotEnoughData, "status event without pull request")
	}
	idx := -1
	for i, s := range statuses {
		if s.Context == trigger.Context && s.State == trigger.State && s.UpdatedAt.Equal(trigger.UpdatedAt) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, goerr.New("trigger status is not part of the status history",
			goerr.V("context", trigger.Context))
	}

	return &ReviewEvent{
		PullRequest:   pr,
		Assignees:     excludeLogin(assignees, pr.Owner),
		Statuses:      statuses,
		TriggerStatus: &statuses[idx],
	}, nil
}

// excludeLogin drops the owner from the assignee set so a self-assigned
// owner does not count as their own reviewer.
func excludeLogin(logins []string, excluded string) []string {
	var out []string
	for _, l := range logins {
		if l != excluded {
			out = append(out, l)
		}
	}
	return out
}

var (
	ptnLGTM             = regexp.MustCompile(`^.*:lgtm(_strong)?:`)
	ptnDemo             = regexp.MustCompile(`^.*(Demo ready for review|No demo to review)`)
	ptnAssignMention    = regexp.MustCompile(`\+@(\w+)\b`)
	ptnUnresolved       = regexp.MustCompile(`(\d+) unresolved discussion`)
	ptnAllResolved      = regexp.MustCompile(`Review status: \d+ of \d+ files reviewed at latest revision, all discussions resolved`)
	ptnHTMLEmoji        = regexp.MustCompile(`<img class="emoji" title="([^"]+)"[^>]*>`)
	ptnMarkdownLink     = regexp.MustCompile(`\[([^]]+)\]\(([^)]+)\)`)
	markdownLinkToSlack = "<$2|$1>"
)

// IsLGTM reports whether the comment carries an approval marker, either as
// text or as the emoji image the review frontend renders it to.
func (x ReviewComment) IsLGTM() bool {
	return ptnLGTM.MatchString(x.Body)
}

// IsDemoReady reports whether the comment announces the demo as ready or
// not needed.
func (x ReviewComment) IsDemoReady() bool {
	return ptnDemo.MatchString(x.Body)
}

// AssignMentions returns the logins added as reviewers through "+@login"
// mentions in the comment body.
func (x ReviewComment) AssignMentions() []string {
	var logins []string
	for _, m := range ptnAssignMention.FindAllStringSubmatch(x.Body, -1) {
		logins = append(logins, m[1])
	}
	return logins
}

// UnaddressedCount returns how many review discussions are still to be
// addressed according to the comment's review-status trailer. Comments
// without a parsable trailer count as fully addressed.
func (x ReviewComment) UnaddressedCount() int {
	if ptnAllResolved.MatchString(x.Body) {
		return 0
	}
	if m := ptnUnresolved.FindStringSubmatch(x.Body); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

// SlackBody converts the comment body to Slack formatting: emoji images
// back to their title and Markdown links to Slack links.
func (x ReviewComment) SlackBody() string {
	body := ptnHTMLEmoji.ReplaceAllString(x.Body, "$1")
	return ptnMarkdownLink.ReplaceAllString(body, markdownLinkToSlack)
}

// LGTMGivers returns the authors who gave an approval marker anywhere in
// the comment history.
func (x *ReviewEvent) LGTMGivers() map[string]bool {
	givers := map[string]bool{}
	for _, c := range x.Comments {
		if c.IsLGTM() {
			givers[c.Author] = true
		}
	}
	return givers
}

// DemoReady reports whether any comment declared the demo ready or not
// needed.
func (x *ReviewEvent) DemoReady() bool {
	for _, c := range x.Comments {
		if c.IsDemoReady() {
			return true
		}
	}
	return false
}

// Commenters returns the set of authors of the comment history.
func (x *ReviewEvent) Commenters() map[string]bool {
	authors := map[string]bool{}
	for _, c := range x.Comments {
		authors[c.Author] = true
	}
	return authors
}

// LatestStatuses reduces the status history to the most recently updated
// entry per (context, author) pair.
func (x *ReviewEvent) LatestStatuses() []CommitStatus {
	type key struct{ context, author string }
	latest := map[key]CommitStatus{}
	var order []key
	for _, s := range x.Statuses {
		k := key{s.Context, s.Author}
		prev, ok := latest[k]
		if !ok {
			order = append(order, k)
		}
		if !ok || s.UpdatedAt.After(prev.UpdatedAt) {
			latest[k] = s
		}
	}
	out := make([]CommitStatus, 0, len(order))
	for _, k := range order {
		out = append(out, latest[k])
	}
	return out
}

// CIState returns the aggregated state of the "ci/" statuses: failure wins
// over pending, pending over success. Empty when no CI status exists.
func (x *ReviewEvent) CIState() string {
	state := ""
	for _, s := range x.LatestStatuses() {
		if !strings.HasPrefix(s.Context, StatusContextCI) {
			continue
		}
		switch s.State {
		case StatusFailure, StatusError:
			return StatusFailure
		case StatusPending:
			state = StatusPending
		case StatusSuccess:
			if state == "" {
				state = StatusSuccess
			}
		}
	}
	return state
}

// ApproversByStatus returns the authors whose latest "code-review/" status
// is a success.
func (x *ReviewEvent) ApproversByStatus() map[string]bool {
	approvers := map[string]bool{}
	for _, s := range x.LatestStatuses() {
		if strings.HasPrefix(s.Context, StatusContextCodeReview) && s.State == StatusSuccess {
			approvers[s.Author] = true
		}
	}
	return approvers
}
