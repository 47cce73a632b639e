package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
	"github.com/bayesimpact/gitreview/pkg/utils/logging"
)

// bestBaseProbeDepth is how many commits of the branch are probed when
// inferring the base branch.
const bestBaseProbeDepth = 5

// baseRemote returns the remote the default branch tracks, assuming
// "origin" when no main or master branch is configured.
func (x *UseCase) baseRemote(ctx context.Context) string {
	for _, branch := range []string{"main", "master"} {
		if remote, err := x.configGet(ctx, "branch."+branch+".remote"); err == nil {
			return remote
		}
	}
	return "origin"
}

// remoteHead resolves the default branch name from the remote HEAD
// reference. When the reference is unset the error carries the command to
// fix it.
func (x *UseCase) remoteHead(ctx context.Context, remote string) (string, error) {
	out, err := x.clients.Git().Output(ctx, "rev-parse", "--abbrev-ref", remote+"/HEAD")
	if err != nil {
		return "", goerr.Wrap(types.ErrNoDefaultBranch,
			fmt.Sprintf("no %s/HEAD reference set, please set it using \"git remote set-head %s main\"", remote, remote),
			goerr.V("remote", remote))
	}
	_, head, ok := strings.Cut(out, "/")
	if !ok {
		return "", goerr.Wrap(types.ErrNoDefaultBranch, "unexpected remote HEAD shape",
			goerr.V("head", out))
	}
	return head, nil
}

// defaultBranch builds the descriptor of the local branch tracking the
// remote default branch, creating the tracking branch when no local branch
// tracks it.
func (x *UseCase) defaultBranch(ctx context.Context) (model.Branch, error) {
	remote := x.baseRemote(ctx)
	head, err := x.remoteHead(ctx, remote)
	if err != nil {
		return model.Branch{}, err
	}
	tracked := remote + "/" + head

	local := ""
	branches, err := x.localBranches(ctx)
	if err != nil {
		return model.Branch{}, err
	}
	for _, branch := range branches {
		upstream, err := x.clients.Git().Output(ctx, "rev-parse", "--abbrev-ref", branch+"@{upstream}")
		if err != nil {
			continue
		}
		if upstream == tracked {
			local = branch
			break
		}
	}
	if local == "" {
		logging.From(ctx).Warn("default branch is not checked out locally, creating it",
			"tracked", tracked)
		if _, err := x.clients.Git().Output(ctx, "branch", head, "--track", tracked); err != nil {
			return model.Branch{}, goerr.Wrap(err, "creating default tracking branch")
		}
		local = head
	}

	initial, err := x.revParse(ctx, local)
	if err != nil {
		return model.Branch{}, err
	}
	return model.Branch{Local: local, Remote: remote, Merge: head, Initial: initial}, nil
}

// branchDescriptor builds the descriptor of a named local branch. With a
// non-empty remotePrefix, a missing local branch is recreated from the
// prefixed remote branch instead of failing.
func (x *UseCase) branchDescriptor(ctx context.Context, branch string, dflt model.Branch, remotePrefix string) (model.Branch, error) {
	remote, err := x.configGet(ctx, "branch."+branch+".remote")
	if err != nil {
		if remotePrefix == "" {
			remote = ""
		} else {
			if err := x.fetch(ctx); err != nil {
				return model.Branch{}, err
			}
			if _, err := x.clients.Git().Output(ctx, "branch", branch, "-t", remotePrefix+branch); err != nil {
				return model.Branch{}, goerr.Wrap(err, "recreating branch from remote",
					goerr.V("branch", branch), goerr.V("prefix", remotePrefix))
			}
			remote = dflt.Remote
		}
	}

	merge := ""
	if remote != "" {
		ref, err := x.configGet(ctx, "branch."+branch+".merge")
		if err != nil {
			return model.Branch{}, goerr.Wrap(err, "reading upstream merge ref", goerr.V("branch", branch))
		}
		merge = strings.TrimPrefix(ref, "refs/heads/")
	}

	initial, err := x.revParse(ctx, branch)
	if err != nil {
		return model.Branch{}, err
	}
	return model.Branch{Local: branch, Remote: remote, Merge: merge, Initial: initial}, nil
}

// bestBaseBranch infers the base branch for a review: probe the most recent
// commits of the branch and take the first one already contained in a
// remote branch. When the default branch is among the candidates there is
// no special base. With skipOwnRemote, the branch's own already-pushed
// remote name is skipped among candidates.
func (x *UseCase) bestBaseBranch(ctx context.Context, refs *model.References, skipOwnRemote bool) (string, error) {
	shas, err := x.recentCommits(ctx, refs.Branch, bestBaseProbeDepth)
	if err != nil {
		return "", err
	}
	remote := x.baseRemote(ctx)

	var candidates []string
	for _, sha := range shas {
		candidates, err = x.remoteBranchesContaining(ctx, remote, sha)
		if err != nil {
			return "", err
		}
		if len(candidates) > 0 {
			break
		}
	}
	if len(candidates) == 0 {
		return "", nil
	}

	for _, candidate := range candidates {
		if strings.HasSuffix(candidate, "/"+refs.Default) {
			return "", nil
		}
	}
	for _, candidate := range candidates {
		name := candidate[strings.LastIndex(candidate, "/")+1:]
		if skipOwnRemote && name == refs.Remote {
			continue
		}
		return name, nil
	}
	return "", nil
}

// resolveReferences computes the full reference set of one review: default
// branch, working branch, base, remote-qualified base, remote push name and
// merge base.
func (x *UseCase) resolveReferences(ctx context.Context, input *model.ReviewInput) (*model.References, error) {
	branch, err := x.currentBranch(ctx)
	if err != nil || branch == "" || branch == "HEAD" {
		return nil, goerr.Wrap(types.ErrNeedsBranch, "cannot resolve the current branch")
	}
	remote := x.baseRemote(ctx)
	dflt, err := x.remoteHead(ctx, remote)
	if err != nil {
		return nil, err
	}
	if !x.isClean(ctx) {
		return nil, goerr.Wrap(types.ErrDirtyWorkingTree,
			"commit, stash or revert your changes before sending for review")
	}

	if branch == dflt {
		branch, err = x.branchOffDefault(ctx, remote, dflt)
		if err != nil {
			return nil, err
		}
	}

	refs := &model.References{
		Default: dflt,
		Branch:  branch,
		Base:    input.Base,
	}

	if upstream, err := x.configGet(ctx, "branch."+branch+".merge"); err == nil {
		refs.Remote = strings.TrimPrefix(upstream, "refs/heads/")
	} else {
		refs.Remote = model.CleanBranchName(input.Username + "-" + branch)
	}

	if refs.Base == "" {
		base, err := x.bestBaseBranch(ctx, refs, x.skipOwnRemote)
		if err != nil {
			return nil, err
		}
		refs.Base = base
	}
	if refs.Base == "" {
		refs.Base = dflt
	}
	refs.RemoteBase = remote + "/" + refs.Base

	mergeBase, err := x.mergeBase(ctx, "HEAD", refs.RemoteBase)
	if err != nil {
		return nil, err
	}
	refs.MergeBase = mergeBase

	return refs, nil
}

// branchOffDefault moves work committed on the default branch to a fresh
// branch named after the latest commit subject, then resets the default
// branch back to the remote tip. Returns the new branch name.
func (x *UseCase) branchOffDefault(ctx context.Context, remote, dflt string) (string, error) {
	tracked := remote + "/" + dflt
	if !x.hasDiff(ctx, tracked) {
		return "", goerr.Wrap(types.ErrNothingToReview, "the default branch is at the remote tip")
	}

	subject, err := x.latestSubject(ctx, "HEAD")
	if err != nil {
		return "", err
	}
	candidate := model.BranchNameFromSubject(subject)
	if candidate == "" {
		candidate = "review"
	}
	branch, err := x.uniqueBranchName(ctx, candidate)
	if err != nil {
		return "", err
	}

	logging.From(ctx).Info("work is on the default branch, moving it to a new branch",
		"branch", branch)
	if _, err := x.clients.Git().Output(ctx, "branch", branch, "HEAD"); err != nil {
		return "", goerr.Wrap(err, "creating branch", goerr.V("branch", branch))
	}

	ancestor, err := x.mergeBase(ctx, "HEAD", tracked)
	if err != nil {
		return "", err
	}
	if _, err := x.clients.Git().Output(ctx, "reset", "--hard", string(ancestor)); err != nil {
		return "", goerr.Wrap(err, "resetting default branch", goerr.V("ancestor", ancestor))
	}
	if err := x.checkout(ctx, branch, false); err != nil {
		return "", goerr.Wrap(err, "checking out new branch", goerr.V("branch", branch))
	}
	return branch, nil
}

// uniqueBranchName suffixes the candidate name with a counter, then a
// timestamp, until it collides with no known branch.
func (x *UseCase) uniqueBranchName(ctx context.Context, candidate string) (string, error) {
	known, err := x.allBranches(ctx)
	if err != nil {
		return "", err
	}
	taken := map[string]bool{}
	for _, b := range known {
		taken[b[strings.LastIndex(b, "/")+1:]] = true
	}

	if !taken[candidate] {
		return candidate, nil
	}
	for i := 2; i < 10; i++ {
		name := fmt.Sprintf("%s-%d", candidate, i)
		if !taken[name] {
			return name, nil
		}
	}
	return fmt.Sprintf("%s-%d", candidate, time.Now().Unix()), nil
}
