package usecase

import (
	"github.com/bayesimpact/gitreview/pkg/domain/model"
	"github.com/bayesimpact/gitreview/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	identities   model.IdentityMap
	adminChannel string

	skipOwnRemote bool
	// autoMerge is the configured default for enabling auto-merge: yes, no,
	// or nil to ask interactively.
	autoMerge *bool
}

type Option func(*UseCase)

// WithIdentities installs the GitHub-login to Slack-login mapping used by
// the notification relay.
func WithIdentities(identities model.IdentityMap) Option {
	return func(x *UseCase) {
		x.identities = identities
	}
}

// WithAdminChannel routes setup errors to the given Slack channel instead
// of dropping the notification.
func WithAdminChannel(channel string) Option {
	return func(x *UseCase) {
		x.adminChannel = channel
	}
}

// WithAutoMerge presets the auto-merge decision so the user is not asked.
func WithAutoMerge(enabled bool) Option {
	return func(x *UseCase) {
		x.autoMerge = &enabled
	}
}

// WithSkipOwnRemote makes base-branch inference skip the branch's own
// already-pushed remote name when choosing among candidate base branches.
func WithSkipOwnRemote() Option {
	return func(x *UseCase) {
		x.skipOwnRemote = true
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
