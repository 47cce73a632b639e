package usecase

import (
	"context"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

const inReviewLabel = "in review"

var ptnFixedIssues = regexp.MustCompile(`(?m)^Fix(?:es)?:? (#\d+(?:, ?#\d+)*)`)
var ptnIssueNumber = regexp.MustCompile(`#(\d+)`)

// Review pushes the current branch under the user's prefix and makes sure
// exactly one open review request exists for it.
func (x *UseCase) Review(ctx context.Context, input *model.ReviewInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	refs, err := x.resolveReferences(ctx, input)
	if err != nil {
		return err
	}

	if input.Browse {
		return x.browseReview(ctx, refs)
	}

	if !x.hasDiff(ctx, string(refs.MergeBase)) {
		return goerr.Wrap(types.ErrNothingToReview, "", goerr.V("branch", refs.Branch))
	}

	// A branch that never claimed its remote name needs a forced push to
	// take it over.
	tracked := false
	if _, err := x.configGet(ctx, "branch."+refs.Branch+".merge"); err == nil {
		tracked = true
	}
	if err := x.pushUpstream(ctx, x.baseRemote(ctx), refs.Branch+":"+refs.Remote, input.Force || !tracked); err != nil {
		return goerr.Wrap(err, "pushing branch", goerr.V("refs", refs))
	}

	if !input.Force {
		if err := x.requestReview(ctx, refs, input); err != nil {
			return err
		}
	}

	if !input.Submit {
		return nil
	}
	localSHA, err := x.revParse(ctx, refs.Branch)
	if err != nil {
		return err
	}
	remoteSHA, err := x.revParse(ctx, x.baseRemote(ctx)+"/"+refs.Remote)
	if err != nil {
		return err
	}
	if localSHA != remoteSHA {
		return goerr.Wrap(types.ErrNotUpToDate, "not submitting")
	}
	return x.Submit(ctx, &model.SubmitInput{Branch: refs.Branch, Rebase: true})
}

// browseReview opens the existing review in a browser.
func (x *UseCase) browseReview(ctx context.Context, refs *model.References) error {
	pr, err := x.clients.Platform().FindReviewRequest(ctx, refs.Remote, refs.Base)
	if err != nil {
		return err
	}
	if pr == nil {
		return goerr.Wrap(types.ErrNothingToReview, "no open review for this branch",
			goerr.V("branch", refs.Branch))
	}
	url := x.clients.Platform().ReviewURL(pr.Number)
	if _, err := x.clients.Git().Output(ctx, "web--browse", url); err != nil {
		return goerr.Wrap(err, "opening browser", goerr.V("url", url))
	}
	return nil
}

// requestReview opens a review request for the (remote, base) pair, or only
// refreshes reviewer assignment when one is already open.
func (x *UseCase) requestReview(ctx context.Context, refs *model.References, input *model.ReviewInput) error {
	reviewers := input.Reviewers
	if len(reviewers) == 0 && input.AutoAssign {
		reviewer, err := x.pickReviewer(ctx, input.Username)
		if err != nil {
			return err
		}
		reviewers = []string{reviewer}
	}

	existing, err := x.clients.Platform().FindReviewRequest(ctx, refs.Remote, refs.Base)
	if err != nil {
		return err
	}

	message, err := x.reviewMessage(ctx, refs, reviewers)
	if err != nil {
		return err
	}

	var pr *model.PullRequest
	if existing != nil {
		logging.From(ctx).Info("review request already open, updating reviewers",
			"number", existing.Number)
		if err := x.clients.Platform().UpdateReviewers(ctx, existing.Number, reviewers); err != nil {
			return err
		}
		pr = existing
	} else {
		title, body, _ := strings.Cut(message, "\n")
		pr, err = x.clients.Platform().CreateReviewRequest(ctx, &model.CreateReviewRequestInput{
			Title:     strings.TrimSpace(title),
			Body:      strings.TrimSpace(body),
			HeadRef:   refs.Remote,
			BaseRef:   refs.Base,
			Reviewers: reviewers,
		})
		if err != nil {
			return err
		}
		logging.From(ctx).Info("review request created",
			"number", pr.Number, "url", x.clients.Platform().ReviewURL(pr.Number))
	}

	if err := x.recordReviewers(ctx, reviewers); err != nil {
		return err
	}
	x.labelFixedIssues(ctx, message)
	return nil
}

// reviewMessage builds the review title and description from the commit log
// between base and branch, plus whatever the repository hook contributes.
func (x *UseCase) reviewMessage(ctx context.Context, refs *model.References, reviewers []string) (string, error) {
	message, err := x.commitLog(ctx, refs.Base, refs.Branch)
	if err != nil {
		return "", err
	}
	hook, err := x.runReviewHook(ctx, refs, reviewers)
	if err != nil {
		return "", err
	}
	return message + hook, nil
}

// runReviewHook runs the repository's .git-review-hook script, if there is
// an executable one, and returns its output.
func (x *UseCase) runReviewHook(ctx context.Context, refs *model.References, reviewers []string) (string, error) {
	topLevel, err := x.topLevel(ctx)
	if err != nil {
		return "", err
	}
	script := topLevel + "/.git-review-hook"
	info, err := os.Stat(script)
	if err != nil || info.Mode()&0o111 == 0 {
		return "", nil
	}

	cmd := exec.CommandContext(ctx, script)
	cmd.Env = append(os.Environ(),
		"BRANCH="+refs.Branch,
		"REMOTE_BRANCH="+refs.Remote,
		"REVIEWER="+strings.Join(reviewers, ","),
	)
	out, err := cmd.Output()
	if err != nil {
		return "", goerr.Wrap(err, "running review hook", goerr.V("script", script))
	}
	return string(out), nil
}

// labelFixedIssues marks the issues referenced by "Fix #n" trailers as
// being in review. Labeling is best effort.
func (x *UseCase) labelFixedIssues(ctx context.Context, message string) {
	for _, m := range ptnFixedIssues.FindAllStringSubmatch(message, -1) {
		for _, issue := range ptnIssueNumber.FindAllStringSubmatch(m[1], -1) {
			number, err := strconv.Atoi(issue[1])
			if err != nil {
				continue
			}
			if err := x.clients.Platform().LabelIssue(ctx, number, inReviewLabel); err != nil {
				logging.From(ctx).Warn("could not label issue", "number", number, "error", err)
			}
		}
	}
}
