package database

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Konsultn-Engineering/sqltpl/dialect"
)

// PgxDatabase implements Database for pgxpool.Pool.
type PgxDatabase struct {
	base
	pool *pgxpool.Pool
}

// NewPgxDatabase wraps pool, building templates with the Postgres dialect.
func NewPgxDatabase(pool *pgxpool.Pool, opts ...Option) *PgxDatabase {
	return &PgxDatabase{base: newBase(dialect.NewPostgresDialect(), opts), pool: pool}
}

// Pool returns the underlying pool.
func (p *PgxDatabase) Pool() *pgxpool.Pool { return p.pool }

// QueryContext builds tpl and executes it over the simple protocol; the text
// already carries its literals, so there is nothing to prepare or bind.
func (p *PgxDatabase) QueryContext(ctx context.Context, tpl string, args ...any) (Rows, error) {
	var rows pgx.Rows
	err := p.run(ctx, "query", tpl, args, func(ctx context.Context, q string) (err error) {
		rows, err = p.pool.Query(ctx, q, pgx.QueryExecModeSimpleProtocol)
		return err
	})
	if err != nil {
		return nil, wrap("query", err)
	}
	return &PgxRows{rows: rows}, nil
}

// ExecContext builds tpl and executes it without returning rows.
func (p *PgxDatabase) ExecContext(ctx context.Context, tpl string, args ...any) (Result, error) {
	var tag pgconn.CommandTag
	err := p.run(ctx, "exec", tpl, args, func(ctx context.Context, q string) (err error) {
		tag, err = p.pool.Exec(ctx, q, pgx.QueryExecModeSimpleProtocol)
		return err
	})
	if err != nil {
		return nil, wrap("exec", err)
	}
	return &PgxResult{cmdTag: tag}, nil
}

// PingContext verifies the connection to the database is alive.
func (p *PgxDatabase) PingContext(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close closes the pool.
func (p *PgxDatabase) Close() error {
	p.pool.Close()
	return nil
}

// PgxRows implements Rows for pgx.Rows.
type PgxRows struct {
	rows              pgx.Rows
	fieldDescriptions []pgconn.FieldDescription
}

// Next prepares the next result row for reading.
func (p *PgxRows) Next() bool { return p.rows.Next() }

// Scan copies the columns from the current row into the provided destinations.
func (p *PgxRows) Scan(dest ...any) error { return p.rows.Scan(dest...) }

// Close closes the rows iterator.
func (p *PgxRows) Close() error { p.rows.Close(); return nil }

// Err returns the error, if any, that was encountered during iteration.
func (p *PgxRows) Err() error { return p.rows.Err() }

// Columns returns the column names.
func (p *PgxRows) Columns() ([]string, error) {
	if p.fieldDescriptions == nil {
		p.fieldDescriptions = p.rows.FieldDescriptions()
	}
	columns := make([]string, len(p.fieldDescriptions))
	for i, fd := range p.fieldDescriptions {
		columns[i] = fd.Name
	}
	return columns, nil
}

// PgxResult implements Result for pgxpool command tags.
type PgxResult struct {
	cmdTag pgconn.CommandTag
}

// LastInsertId is not supported in PostgreSQL; use RETURNING instead.
func (r *PgxResult) LastInsertId() (int64, error) {
	return 0, errors.New("database: LastInsertId is not supported by PostgreSQL")
}

// RowsAffected returns the number of rows affected by the command.
func (r *PgxResult) RowsAffected() (int64, error) {
	return r.cmdTag.RowsAffected(), nil
}

// Assert that PgxDatabase implements the Database interface.
var _ Database = (*PgxDatabase)(nil)
