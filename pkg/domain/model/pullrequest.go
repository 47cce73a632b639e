package model

import (
	"github.com/bayesimpact/gitreview/pkg/domain/types"
)

// AutoMerge describes the auto-merge capability flags of a pull request as
// seen by the authenticated viewer.
type AutoMerge struct {
	CanEnable  bool
	CanDisable bool
	IsEnabled  bool
}

// PullRequest is a remote review request. It is always re-fetched from the
// platform, never cached across command invocations.
type PullRequest struct {
	NodeID    types.NodeID
	Number    int
	Title     string
	URL       string
	Owner     string
	HeadRef   string
	BaseRef   string
	Mergeable bool
	AutoMerge AutoMerge
}

// RepoSettings are the repository-level settings relevant to submitting.
type RepoSettings struct {
	DeleteBranchOnMerge bool
	ViewerCanAdminister bool
	AllowAutoMerge      bool
}

// Engineer is a member of the team that can be picked as a reviewer.
type Engineer struct {
	Login string
	Email string
}

// CreateReviewRequestInput carries the parameters for opening a new review
// request on the hosting platform.
type CreateReviewRequestInput struct {
	Title     string
	Body      string
	HeadRef   string
	BaseRef   string
	Reviewers []string
}
