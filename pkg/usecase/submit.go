package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

// Submit rebases the branch into a single commit on top of the upstream
// tip, pushes it, merges it now or once CI succeeds, and cleans up the
// local and remote branches.
func (x *UseCase) Submit(ctx context.Context, input *model.SubmitInput) error {
	startBranch, err := x.currentBranch(ctx)
	if err != nil {
		return err
	}

	dflt, err := x.defaultBranch(ctx)
	if err != nil {
		return err
	}

	user := input.User
	if input.Abort && user == "" {
		email, err := x.configGet(ctx, "user.email")
		if err != nil {
			return goerr.Wrap(err, "resolving username from git email")
		}
		user, _, _ = strings.Cut(email, "@")
	}
	branchName := input.Branch
	if branchName == "" {
		branchName = startBranch
	}
	remotePrefix := ""
	if input.Abort {
		remotePrefix = dflt.Remote + "/" + user + "-"
	}

	if err := x.checkCleanState(ctx, branchName, dflt, remotePrefix); err != nil {
		return err
	}
	branch, err := x.branchDescriptor(ctx, branchName, dflt, remotePrefix)
	if err != nil {
		return err
	}

	pr, settings, err := x.pullRequestInfo(ctx, branch)
	if err != nil {
		return err
	}

	if input.Abort {
		return x.abortSubmit(ctx, branchName, pr)
	}

	shouldAutoMerge, err := x.shouldAutoMerge(ctx, branch, input.Force, pr)
	if err != nil {
		return err
	}

	if err := x.fetch(ctx); err != nil {
		return goerr.Wrap(err, "fetching remote")
	}
	tip, err := x.revParse(ctx, dflt.Tracked())
	if err != nil {
		return err
	}
	dflt = dflt.WithInitial(tip)

	squashOnPlatform := pr != nil
	if err := x.handleRebase(ctx, dflt, branch, input.Force || input.Rebase, squashOnPlatform); err != nil {
		return err
	}

	if branch.Remote == "" {
		return x.pushUntracked(ctx, startBranch, dflt, branch)
	}
	localSHA, err := x.revParse(ctx, branch.Local)
	if err != nil {
		return err
	}
	remoteSHA, err := x.revParse(ctx, branch.Tracked())
	if err == nil && localSHA != remoteSHA {
		if err := x.pushTracked(ctx, branch, true); err != nil {
			return x.abort(ctx, startBranch, branch)
		}
	}

	if pr == nil {
		return x.mergeLocally(ctx, startBranch, dflt, branch)
	}

	branch = branch.WithInitial(localSHA)
	merged, err := x.mergeNowOrLater(ctx, pr, shouldAutoMerge, branch.Initial)
	if err != nil {
		return x.abort(ctx, startBranch, dflt, branch)
	}
	// A remote branch pending auto-merge is kept; the platform deletes it
	// when the merge completes.
	keepRemote := !merged
	if keepRemote && settings != nil && !settings.DeleteBranchOnMerge {
		x.offerDeleteBranchOnMerge(ctx, settings)
	}

	if err := x.checkout(ctx, dflt.Local, false); err != nil {
		return err
	}
	if _, err := x.clients.Git().Output(ctx, "pull", "--ff-only"); err != nil {
		return goerr.Wrap(err, "updating default branch")
	}
	return x.deleteBranch(ctx, branch, keepRemote)
}

// checkCleanState validates the preconditions of a submit.
func (x *UseCase) checkCleanState(ctx context.Context, branch string, dflt model.Branch, remotePrefix string) error {
	if branch == dflt.Local {
		branches, _ := x.localBranches(ctx)
		return goerr.Wrap(types.ErrNeedsBranch, "", goerr.V("local_branches", branches))
	}
	if !x.isClean(ctx) {
		return goerr.Wrap(types.ErrDirtyWorkingTree,
			"commit, stash or revert your changes before submitting")
	}
	if remotePrefix != "" {
		return nil
	}
	if _, err := x.clients.Git().Output(ctx, "rev-parse", "--verify", branch); err != nil {
		branches, _ := x.localBranches(ctx)
		return goerr.Wrap(types.ErrInvalidBranch, "",
			goerr.V("branch", branch), goerr.V("local_branches", branches))
	}
	return nil
}

// pullRequestInfo fetches the open review for the branch. A local platform
// reports no review, which switches Submit to the local merge path.
func (x *UseCase) pullRequestInfo(ctx context.Context, branch model.Branch) (*model.PullRequest, *model.RepoSettings, error) {
	head := branch.Merge
	if head == "" {
		head = branch.Local
	}
	return x.clients.Platform().PullRequestInfo(ctx, head)
}

// abortSubmit cancels a pending auto-merge for the branch.
func (x *UseCase) abortSubmit(ctx context.Context, branch string, pr *model.PullRequest) error {
	if err := x.checkout(ctx, branch, false); err != nil {
		return err
	}
	log := logging.From(ctx)
	if pr == nil {
		log.Warn("unable to cancel auto-merge, no review request found", "branch", branch)
		return nil
	}
	if !pr.AutoMerge.IsEnabled {
		log.Info("auto-merge is not enabled for this review yet, nothing to abort")
		return nil
	}
	if !pr.AutoMerge.CanDisable {
		log.Warn("you don't have the rights to cancel this auto-merge, please contact the project admin")
		return nil
	}
	if err := x.clients.Platform().DisableAutoMerge(ctx, pr.NodeID); err != nil {
		return goerr.Wrap(err, "cancelling auto-merge")
	}
	log.Info("auto-merge has been cancelled", "branch", branch)
	return nil
}

// shouldAutoMerge decides whether to enable auto-merge rather than merging
// immediately. A successful CI means an immediate merge; otherwise the
// answer comes from the configured default, the review capabilities, or an
// interactive question.
func (x *UseCase) shouldAutoMerge(ctx context.Context, branch model.Branch, force bool, pr *model.PullRequest) (bool, error) {
	if pr == nil {
		return false, nil
	}
	ref := branch.Merge
	if ref == "" {
		ref = branch.Local
	}
	state, details, err := x.clients.Platform().CIStatus(ctx, ref)
	if err != nil {
		return false, err
	}
	if state == "" || state == "success" {
		return false, nil
	}

	log := logging.From(ctx)
	if force {
		log.Warn("forcing submission despite CI status", "state", state)
		return x.autoMerge != nil && *x.autoMerge, nil
	}
	log.Info("CI is not successful", "state", state)

	shouldAutoMerge := x.autoMerge
	if pr.AutoMerge.IsEnabled || !pr.AutoMerge.CanEnable {
		no := false
		shouldAutoMerge = &no
	}
	if shouldAutoMerge == nil {
		answer := x.clients.Prompter().AskYesNo("Do you want to enable auto-merge?")
		shouldAutoMerge = &answer
	}
	if !*shouldAutoMerge {
		return false, goerr.Wrap(types.ErrExecution,
			"CI is not successful, use --force to submit anyway",
			goerr.V("state", state), goerr.V("details", details))
	}
	return true, nil
}

// handleRebase loops until the branch is exactly one commit ahead of the
// upstream tip. A branch whose extra commits are already upstream only
// needs a plain rebase; anything else needs an interactive squash.
func (x *UseCase) handleRebase(ctx context.Context, dflt, branch model.Branch, force, squashOnPlatform bool) error {
	penultimate, err := x.revParse(ctx, branch.Local+"^")
	if err != nil {
		return err
	}
	for dflt.Initial != penultimate {
		tip, err := x.revParse(ctx, branch.Local)
		if err != nil {
			return err
		}
		if dflt.Initial == tip {
			return goerr.Wrap(types.ErrNothingToSubmit, "", goerr.V("branch", branch.Local))
		}
		if x.isAncestor(ctx, string(penultimate), string(dflt.Initial)) {
			if !squashOnPlatform {
				if err := x.rebaseOrRollback(ctx, dflt.Tracked(), branch.Local, false); err != nil {
					return err
				}
			}
			return nil
		}

		logging.From(ctx).Warn("changes must be grouped in one commit",
			"hint", "git rebase -i "+dflt.Tracked()+" "+branch.Local)
		if !force && squashOnPlatform {
			return goerr.Wrap(types.ErrSquashRequired, "")
		}
		if !force && !x.clients.Prompter().AskYesNo("Rebase now?") {
			return goerr.Wrap(types.ErrRebaseDeclined, "")
		}
		if err := x.rebaseOrRollback(ctx, dflt.Tracked(), branch.Local, true); err != nil {
			return err
		}
		penultimate, err = x.revParse(ctx, branch.Local+"^")
		if err != nil {
			return err
		}
	}
	return nil
}

// pushUntracked publishes a branch that has no upstream yet, then stops so
// the user can re-run submit against the fresh tracking state.
func (x *UseCase) pushUntracked(ctx context.Context, startBranch string, dflt, branch model.Branch) error {
	logging.From(ctx).Warn("the branch is not tracked and has probably never been reviewed",
		"branch", branch.Local)
	if x.clients.Prompter().AskYesNo("Push now?") {
		if err := x.pushUpstream(ctx, dflt.Remote, branch.Local, false); err != nil {
			return x.abort(ctx, startBranch, branch, dflt)
		}
	}
	return goerr.Wrap(types.ErrNotUpToDate, "the branch was not tracked, re-run submit")
}

// mergeLocally fast-forwards the default branch onto the submitted branch
// and pushes it, for repositories without a review platform.
func (x *UseCase) mergeLocally(ctx context.Context, startBranch string, dflt, branch model.Branch) error {
	if err := x.checkout(ctx, dflt.Local, false); err != nil {
		return err
	}
	if err := x.rebaseOrRollback(ctx, branch.Local, dflt.Local, false); err != nil {
		return x.abort(ctx, startBranch, dflt, branch)
	}
	if err := x.pushTracked(ctx, dflt, false); err != nil {
		return x.abort(ctx, startBranch, dflt, branch)
	}
	return x.deleteBranch(ctx, branch, false)
}

// mergeNowOrLater merges through the platform API, immediately or once CI
// succeeds. Returns whether the merge is already done.
func (x *UseCase) mergeNowOrLater(ctx context.Context, pr *model.PullRequest, shouldAutoMerge bool, sha types.CommitSHA) (bool, error) {
	log := logging.From(ctx)
	if pr.AutoMerge.IsEnabled {
		log.Info("the platform will auto-merge this review once CI is successful")
		return false, nil
	}
	if !shouldAutoMerge {
		// The recorded tip works as an optimistic concurrency token: the
		// merge fails if the remote branch has moved.
		if err := x.clients.Platform().Merge(ctx, pr.Number, sha); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := x.clients.Platform().EnableAutoMerge(ctx, pr.NodeID); err != nil {
		return false, err
	}
	log.Info("your branch will be merged once CI is successful")
	return false, nil
}

// offerDeleteBranchOnMerge proposes to turn on automatic deletion of merged
// branches when the repository does not do it yet.
func (x *UseCase) offerDeleteBranchOnMerge(ctx context.Context, settings *model.RepoSettings) {
	log := logging.From(ctx)
	log.Warn("the remote branch won't be deleted after auto-merge")
	if !settings.ViewerCanAdminister {
		log.Info("you can contact a repo admin to set it up for you")
		return
	}
	if !x.clients.Prompter().AskYesNo("Do you want to update your repository settings?") {
		return
	}
	if err := x.clients.Platform().EnableDeleteBranchOnMerge(ctx); err != nil {
		log.Warn("could not update repository settings", "error", err)
	}
}

// abort resets every touched branch to its pre-operation commit and goes
// back to the branch the user started on.
func (x *UseCase) abort(ctx context.Context, startBranch string, branches ...model.Branch) error {
	log := logging.From(ctx)
	log.Error("something went wrong, aborting")
	for _, branch := range branches {
		log.Info("resetting branch", "branch", branch.Local, "to", branch.Initial)
		if err := x.resetBranch(ctx, branch.Local, branch.Initial); err != nil {
			log.Warn("could not reset branch", "branch", branch.Local, "error", err)
		}
	}
	current, err := x.currentBranch(ctx)
	if err == nil && current != startBranch {
		log.Info("going back to branch", "branch", startBranch)
		if err := x.checkout(ctx, startBranch, true); err != nil {
			log.Warn("could not go back to start branch", "error", err)
		}
	}
	return goerr.Wrap(types.ErrAborted, "")
}
