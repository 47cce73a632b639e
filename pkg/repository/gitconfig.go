package repository

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
)

// ErrNotFound reports that a key has never been set.
var ErrNotFound = goerr.New("config key not found")

// GitConfig persists tool state in git config, in the repository's local
// scope by default. Keys are namespaced under "review.", e.g.
// "review.recentReviewers".
type GitConfig struct {
	git      interfaces.GitClient
	isGlobal bool
}

var _ interfaces.ConfigStore = (*GitConfig)(nil)

type GitConfigOption func(*GitConfig)

// WithGlobal stores keys in the user-wide config instead of the
// repository's.
func WithGlobal() GitConfigOption {
	return func(x *GitConfig) {
		x.isGlobal = true
	}
}

func NewGitConfig(git interfaces.GitClient, options ...GitConfigOption) *GitConfig {
	store := &GitConfig{git: git}
	for _, opt := range options {
		opt(store)
	}
	return store
}

func (x *GitConfig) scopeArgs(args ...string) []string {
	if x.isGlobal {
		return append([]string{"config", "--global"}, args...)
	}
	return append([]string{"config"}, args...)
}

func (x *GitConfig) Get(ctx context.Context, key string) (string, error) {
	value, err := x.git.Output(ctx, x.scopeArgs("--get", key)...)
	if err != nil {
		// git config exits 1 for a missing key.
		return "", goerr.Wrap(ErrNotFound, "no value for key", goerr.V("key", key))
	}
	return value, nil
}

func (x *GitConfig) Set(ctx context.Context, key, value string) error {
	if _, err := x.git.Output(ctx, x.scopeArgs(key, value)...); err != nil {
		return goerr.Wrap(err, "setting config key", goerr.V("key", key))
	}
	return nil
}

func (x *GitConfig) Unset(ctx context.Context, key string) error {
	if _, err := x.git.Output(ctx, x.scopeArgs("--unset", key)...); err != nil {
		// Unsetting a missing key is not an error.
		return nil
	}
	return nil
}
