package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Konsultn-Engineering/sqltpl/connector"
	"github.com/Konsultn-Engineering/sqltpl/database"
)

type Provider struct{}

func init() {
	connector.Register("postgres", &Provider{})
}

// Open builds a pgx pool from cfg and verifies it with a ping.
func (p *Provider) Open(ctx context.Context, cfg connector.Config, opts ...database.Option) (database.Database, error) {
	poolCfg, err := pgxpool.ParseConfig(connector.PostgresDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.Pool.MaxOpen)
	poolCfg.MinConns = int32(cfg.Pool.MaxIdle)
	poolCfg.MaxConnLifetime = cfg.Pool.MaxLifetime
	poolCfg.MaxConnIdleTime = cfg.Pool.MaxIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return database.NewPgxDatabase(pool, opts...), nil
}
