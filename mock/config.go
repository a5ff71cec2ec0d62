package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/cwsummary"
)

var _ cwsummary.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a mock implementation of cwsummary.ConfigStore.
type ConfigStore struct {
	GetValueFn   func(ctx context.Context, rangeID, key string) (string, error)
	StoreValueFn func(ctx context.Context, rangeID, key, value string) error
}

func (s *ConfigStore) GetValue(ctx context.Context, rangeID, key string) (string, error) {
	return s.GetValueFn(ctx, rangeID, key)
}

func (s *ConfigStore) StoreValue(ctx context.Context, rangeID, key, value string) error {
	return s.StoreValueFn(ctx, rangeID, key, value)
}

// NewMemoryConfigStore returns a ConfigStore backed by a map.
func NewMemoryConfigStore() *ConfigStore {
	var mu sync.Mutex
	values := map[[2]string]string{}
	return &ConfigStore{
		GetValueFn: func(_ context.Context, rangeID, key string) (string, error) {
			mu.Lock()
			defer mu.Unlock()
			v, ok := values[[2]string{rangeID, key}]
			if !ok {
				return "", cwsummary.Errorf(cwsummary.ENOTFOUND, "config value not found")
			}
			return v, nil
		},
		StoreValueFn: func(_ context.Context, rangeID, key, value string) error {
			mu.Lock()
			defer mu.Unlock()
			values[[2]string{rangeID, key}] = value
			return nil
		},
	}
}
