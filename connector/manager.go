package connector

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Konsultn-Engineering/sqltpl/database"
)

var globalManager = &Manager{
	providers: make(map[string]Provider),
}

type Manager struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

func Register(name string, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[name] = provider
}

// Drivers returns the names of the registered providers, sorted.
func Drivers() []string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	names := make([]string, 0, len(globalManager.providers))
	for name := range globalManager.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open connects with the provider registered for cfg.Driver, retrying when
// cfg.Retry is set.
func Open(ctx context.Context, cfg Config, opts ...database.Option) (database.Database, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	globalManager.mu.RLock()
	provider, ok := globalManager.providers[cfg.Driver]
	globalManager.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("connector: provider %s not registered", cfg.Driver)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	connect := func(ctx context.Context) (database.Database, error) {
		return provider.Open(ctx, cfg, opts...)
	}
	if cfg.Retry == nil {
		return connect(ctx)
	}
	db, err := retryConnect(ctx, *cfg.Retry, connect)
	if err != nil {
		return nil, fmt.Errorf("connector: failed to connect after %d retries: %w", cfg.Retry.MaxRetries, err)
	}
	return db, nil
}
