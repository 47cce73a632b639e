package infra

import (
	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
	"github.com/bayesimpact/gitreview/pkg/infra/gitcli"
	"github.com/bayesimpact/gitreview/pkg/infra/prompt"
)

type Clients struct {
	git         interfaces.GitClient
	platform    interfaces.Platform
	configStore interfaces.ConfigStore
	notifier    interfaces.Notifier
	absence     interfaces.AbsenceSource
	relayGitHub interfaces.RelayGitHub
	prompter    interfaces.Prompter
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		git:      gitcli.New(""),
		prompter: prompt.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Git() interfaces.GitClient {
	return x.git
}
func (x *Clients) Platform() interfaces.Platform {
	return x.platform
}
func (x *Clients) ConfigStore() interfaces.ConfigStore {
	return x.configStore
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}
func (x *Clients) Absence() interfaces.AbsenceSource {
	return x.absence
}
func (x *Clients) RelayGitHub() interfaces.RelayGitHub {
	return x.relayGitHub
}
func (x *Clients) Prompter() interfaces.Prompter {
	return x.prompter
}

func WithGit(client interfaces.GitClient) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithPlatform(client interfaces.Platform) Option {
	return func(x *Clients) {
		x.platform = client
	}
}

func WithConfigStore(store interfaces.ConfigStore) Option {
	return func(x *Clients) {
		x.configStore = store
	}
}

func WithNotifier(client interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = client
	}
}

func WithAbsence(client interfaces.AbsenceSource) Option {
	return func(x *Clients) {
		x.absence = client
	}
}

func WithRelayGitHub(client interfaces.RelayGitHub) Option {
	return func(x *Clients) {
		x.relayGitHub = client
	}
}

func WithPrompter(client interfaces.Prompter) Option {
	return func(x *Clients) {
		x.prompter = client
	}
}
