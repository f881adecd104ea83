// Package sqltpl compiles query templates with typed placeholders and
// optional blocks into SQL text, and runs them against MySQL, TiDB or
// PostgreSQL.
//
//	db, err := sqltpl.Connect(ctx, cfg)
//	rows, err := db.QueryContext(ctx,
//		"SELECT ?# FROM users WHERE id = ?d{ AND block = ?d}",
//		[]string{"name", "email"}, 7, sqltpl.Skip())
package sqltpl

import (
	"context"

	"github.com/Konsultn-Engineering/sqltpl/connector"
	"github.com/Konsultn-Engineering/sqltpl/database"
	_ "github.com/Konsultn-Engineering/sqltpl/providers/mysql"
	_ "github.com/Konsultn-Engineering/sqltpl/providers/postgres"
	"github.com/Konsultn-Engineering/sqltpl/query"
)

type Config = connector.Config

// Connect opens the database described by cfg with every built-in provider
// available.
func Connect(ctx context.Context, cfg Config, opts ...database.Option) (database.Database, error) {
	return connector.Open(ctx, cfg, opts...)
}

// New returns a standalone query builder; see query.New.
func New(opts ...query.Option) *query.Builder {
	return query.New(opts...)
}

// Skip returns the argument that omits its conditional block.
func Skip() any {
	return query.Skip()
}
