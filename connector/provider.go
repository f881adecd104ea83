package connector

import (
	"context"

	"github.com/Konsultn-Engineering/sqltpl/database"
)

// Provider opens a Database for one driver. Implementations register
// themselves with Register from an init function.
type Provider interface {
	Open(ctx context.Context, cfg Config, opts ...database.Option) (database.Database, error)
}

// ProviderFunc adapts a function into a Provider.
type ProviderFunc func(ctx context.Context, cfg Config, opts ...database.Option) (database.Database, error)

func (f ProviderFunc) Open(ctx context.Context, cfg Config, opts ...database.Option) (database.Database, error) {
	return f(ctx, cfg, opts...)
}
