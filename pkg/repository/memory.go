package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
)

// Memory is an in-process store for tests.
type Memory struct {
	mutex  sync.Mutex
	values map[string]string
}

var _ interfaces.ConfigStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (x *Memory) Get(ctx context.Context, key string) (string, error) {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	value, ok := x.values[key]
	if !ok {
		return "", goerr.Wrap(ErrNotFound, "no value for key", goerr.V("key", key))
	}
	return value, nil
}

func (x *Memory) Set(ctx context.Context, key, value string) error {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	x.values[key] = value
	return nil
}

func (x *Memory) Unset(ctx context.Context, key string) error {
	x.mutex.Lock()
	defer x.mutex.Unlock()

	delete(x.values, key)
	return nil
}
