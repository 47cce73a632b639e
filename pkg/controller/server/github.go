package server

import (
	"net/http"

	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

// handleGitHubEvent validates a webhook delivery, classifies it, and
// returns the generated messages. Unsupported event types are a graceful
// no-op with an empty message set.
func handleGitHubEvent(r *http.Request, uc interfaces.UseCase, secret types.GitHubAppSecret) (model.MessageSet, error) {
	ctx := r.Context()
	payload, err := github.ValidatePayload(r, []byte(secret))
	if err != nil {
		return nil, goerr.Wrap(err, "validating payload")
	}

	event, err := github.ParseWebHook(github.WebHookType(r), payload)
	if err != nil {
		return nil, goerr.Wrap(err, "parsing webhook")
	}

	switch ev := event.(type) {
	case *github.IssueCommentEvent:
		input := issueCommentToInput(ev)
		if input == nil {
			return model.MessageSet{}, nil
		}
		return uc.HandleCommentEvent(ctx, input)

	case *github.StatusEvent:
		input := statusToInput(ev)
		if input == nil {
			return model.MessageSet{}, nil
		}
		return uc.HandleStatusEvent(ctx, input)

	default:
		logging.From(ctx).Debug("ignoring event", slog.String("type", github.WebHookType(r)))
		return model.MessageSet{}, nil
	}
}

func issueCommentToInput(ev *github.IssueCommentEvent) *model.CommentNotificationInput {
	// Only freshly created comments matter; edits and deletions are noise.
	if ev.GetAction() != "created" || ev.Issue == nil || ev.Comment == nil {
		return nil
	}

	assignees := make([]string, 0, len(ev.GetIssue().Assignees))
	for _, a := range ev.GetIssue().Assignees {
		assignees = append(assignees, a.GetLogin())
	}

	return &model.CommentNotificationInput{
		InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		Owner:     ev.GetRepo().GetOwner().GetLogin(),
		Repo:      ev.GetRepo().GetName(),
		Number:    ev.GetIssue().GetNumber(),
		Title:     ev.GetIssue().GetTitle(),
		PROwner:   ev.GetIssue().GetUser().GetLogin(),
		Assignees: assignees,
		Comment: model.ReviewComment{
			Author:    ev.GetComment().GetUser().GetLogin(),
			Body:      ev.GetComment().GetBody(),
			CreatedAt: ev.GetComment().GetCreatedAt().Time,
		},
	}
}

func statusToInput(ev *github.StatusEvent) *model.StatusNotificationInput {
	if ev.GetSHA() == "" || ev.GetContext() == "" {
		return nil
	}
	return &model.StatusNotificationInput{
		InstallID: types.GitHubAppInstallID(ev.GetInstallation().GetID()),
		Owner:     ev.GetRepo().GetOwner().GetLogin(),
		Repo:      ev.GetRepo().GetName(),
		SHA:       types.CommitSHA(ev.GetSHA()),
		Context:   ev.GetContext(),
		State:     ev.GetState(),
		TargetURL: ev.GetTargetURL(),
		Author:    ev.GetSender().GetLogin(),
		UpdatedAt: ev.GetUpdatedAt().Time,
	}
}
