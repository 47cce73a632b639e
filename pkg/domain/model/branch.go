package model

import (
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// Branch describes a local branch and the remote branch it tracks.
// Initial records the commit the local branch pointed at when the command
// started, so that a failed operation can roll the branch back.
type Branch struct {
	// Local is the local name of the branch.
	Local string
	// Remote is the name of the remote the tracked branch lives on. Empty
	// when the branch has no upstream.
	Remote string
	// Merge is the name of the tracked branch on the remote, without the
	// refs/heads/ prefix.
	Merge string
	// Initial is the commit Local pointed at when the descriptor was built.
	Initial types.CommitSHA
}

// Tracked returns the remote-qualified name of the tracked branch, such as
// "origin/main". Empty when the branch is not tracked.
func (x Branch) Tracked() string {
	if x.Remote == "" || x.Merge == "" {
		return ""
	}
	return x.Remote + "/" + x.Merge
}

// WithInitial returns a copy of the descriptor rebound to a new initial
// commit.
func (x Branch) WithInitial(sha types.CommitSHA) Branch {
	x.Initial = sha
	return x
}
