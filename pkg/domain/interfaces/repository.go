package interfaces

import "context"

//go:generate moq -out ../mock/config_store_mock.go -pkg mock . ConfigStore

// ConfigStore is the small durable key/value state the tools keep between
// invocations: recent reviewers, cached team slug, email mappings. The
// production implementation is backed by git config.
type ConfigStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Unset(ctx context.Context, key string) error
}
