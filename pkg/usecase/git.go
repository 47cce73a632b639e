package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// Typed helpers over the raw git command wrapper. Each one runs a single
// git command; the state machines in review.go and submit.go compose them.

func (x *UseCase) revParse(ctx context.Context, ref string) (types.CommitSHA, error) {
	out, err := x.clients.Git().Output(ctx, "rev-parse", ref)
	if err != nil {
		return "", goerr.Wrap(err, "resolving ref", goerr.V("ref", ref))
	}
	return types.CommitSHA(out), nil
}

func (x *UseCase) currentBranch(ctx context.Context) (string, error) {
	out, err := x.clients.Git().Output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", goerr.Wrap(err, "resolving current branch")
	}
	return out, nil
}

// isClean reports whether the working tree has no uncommitted change
// relative to HEAD.
func (x *UseCase) isClean(ctx context.Context) bool {
	_, err := x.clients.Git().Output(ctx, "diff", "HEAD", "--exit-code")
	return err == nil
}

// hasDiff reports whether HEAD differs from base.
func (x *UseCase) hasDiff(ctx context.Context, base string) bool {
	_, err := x.clients.Git().Output(ctx, "diff", "--quiet", base)
	return err != nil
}

func (x *UseCase) configGet(ctx context.Context, key string) (string, error) {
	return x.clients.Git().Output(ctx, "config", key)
}

func (x *UseCase) fetch(ctx context.Context) error {
	_, err := x.clients.Git().Output(ctx, "fetch")
	return err
}

func (x *UseCase) checkout(ctx context.Context, branch string, force bool) error {
	args := []string{"checkout"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, branch)
	_, err := x.clients.Git().Output(ctx, args...)
	return err
}

func (x *UseCase) mergeBase(ctx context.Context, ref1, ref2 string) (types.CommitSHA, error) {
	out, err := x.clients.Git().Output(ctx, "merge-base", ref1, ref2)
	if err != nil {
		return "", goerr.Wrap(err, "computing merge base",
			goerr.V("ref1", ref1), goerr.V("ref2", ref2))
	}
	return types.CommitSHA(out), nil
}

func (x *UseCase) isAncestor(ctx context.Context, ref1, ref2 string) bool {
	_, err := x.clients.Git().Output(ctx, "merge-base", "--is-ancestor", ref1, ref2)
	return err == nil
}

// rebaseOrRollback rebases branch onto the given ref, aborting the rebase on
// conflict so the working tree is never left in a half-rebased state.
func (x *UseCase) rebaseOrRollback(ctx context.Context, onto, branch string, interactive bool) error {
	args := []string{"rebase", onto, branch}
	if interactive {
		args = append(args, "-i")
	}
	if _, err := x.clients.Git().Output(ctx, args...); err != nil {
		_, _ = x.clients.Git().Output(ctx, "rebase", "--abort")
		return goerr.Wrap(err, "rebase failed", goerr.V("onto", onto), goerr.V("branch", branch))
	}
	return nil
}

// pushTracked pushes the branch to its tracked remote ref.
func (x *UseCase) pushTracked(ctx context.Context, branch model.Branch, force bool) error {
	args := []string{"push"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, branch.Remote, branch.Local+":"+branch.Merge)
	_, err := x.clients.Git().Output(ctx, args...)
	return err
}

// pushUpstream pushes the branch to a remote and records it as upstream.
func (x *UseCase) pushUpstream(ctx context.Context, remote, refspec string, force bool) error {
	args := []string{"push"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, "-u", remote, refspec)
	_, err := x.clients.Git().Output(ctx, args...)
	return err
}

// resetBranch forces a local branch back to the given commit.
func (x *UseCase) resetBranch(ctx context.Context, branch string, sha types.CommitSHA) error {
	_, err := x.clients.Git().Output(ctx, "branch", "-f", branch, string(sha))
	return err
}

// deleteBranch removes the local branch and, unless keepRemote, its remote
// counterpart.
func (x *UseCase) deleteBranch(ctx context.Context, branch model.Branch, keepRemote bool) error {
	if _, err := x.clients.Git().Output(ctx, "branch", "-D", branch.Local); err != nil {
		return err
	}
	if keepRemote || branch.Remote == "" {
		return nil
	}
	_, err := x.clients.Git().Output(ctx, "push", "-d", branch.Remote, branch.Merge)
	return err
}

func (x *UseCase) localBranches(ctx context.Context) ([]string, error) {
	out, err := x.clients.Git().Output(ctx, "branch", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

func (x *UseCase) allBranches(ctx context.Context) ([]string, error) {
	out, err := x.clients.Git().Output(ctx, "branch", "-a", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// remoteBranchesContaining lists the remote branches of the given remote
// that contain sha.
func (x *UseCase) remoteBranchesContaining(ctx context.Context, remote string, sha types.CommitSHA) ([]string, error) {
	out, err := x.clients.Git().Output(ctx,
		"branch", "-r", "--contains", string(sha), "--list", remote+"/*")
	if err != nil {
		return nil, err
	}
	branches := splitLines(out)
	for i, b := range branches {
		branches[i] = strings.TrimSpace(b)
	}
	return branches, nil
}

// recentCommits lists the most recent commit SHAs of the branch, newest
// first.
func (x *UseCase) recentCommits(ctx context.Context, branch string, count int) ([]types.CommitSHA, error) {
	out, err := x.clients.Git().Output(ctx, "rev-list", "--max-count="+strconv.Itoa(count), branch)
	if err != nil {
		return nil, err
	}
	lines := splitLines(out)
	shas := make([]types.CommitSHA, 0, len(lines))
	for _, l := range lines {
		shas = append(shas, types.CommitSHA(l))
	}
	return shas, nil
}

// commitLog returns the raw commit messages between base and branch, newest
// first.
func (x *UseCase) commitLog(ctx context.Context, base, branch string) (string, error) {
	out, err := x.clients.Git().Output(ctx, "log", "--format=%B", base+".."+branch)
	if err != nil {
		return "", goerr.Wrap(err, "reading commit log",
			goerr.V("base", base), goerr.V("branch", branch))
	}
	return out, nil
}

func (x *UseCase) latestSubject(ctx context.Context, ref string) (string, error) {
	out, err := x.clients.Git().Output(ctx, "log", "--format=%s", "-1", ref)
	if err != nil {
		return "", goerr.Wrap(err, "reading commit subject", goerr.V("ref", ref))
	}
	return out, nil
}

func (x *UseCase) topLevel(ctx context.Context) (string, error) {
	return x.clients.Git().Output(ctx, "rev-parse", "--show-toplevel")
}

func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
