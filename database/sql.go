package database

import (
	"context"
	"database/sql"

	"github.com/Konsultn-Engineering/sqltpl/dialect"
)

// SqlDatabase implements Database for *sql.DB.
type SqlDatabase struct {
	base
	db *sql.DB
}

// NewSqlDatabase wraps db, building templates with the given dialect.
func NewSqlDatabase(db *sql.DB, d dialect.Dialect, opts ...Option) *SqlDatabase {
	return &SqlDatabase{base: newBase(d, opts), db: db}
}

// DB returns the underlying *sql.DB.
func (s *SqlDatabase) DB() *sql.DB { return s.db }

// QueryContext builds tpl and executes it as a query that returns rows.
func (s *SqlDatabase) QueryContext(ctx context.Context, tpl string, args ...any) (Rows, error) {
	var rows *sql.Rows
	err := s.run(ctx, "query", tpl, args, func(ctx context.Context, q string) (err error) {
		rows, err = s.db.QueryContext(ctx, q)
		return err
	})
	if err != nil {
		return nil, wrap("query", err)
	}
	return rows, nil
}

// ExecContext builds tpl and executes it without returning rows.
func (s *SqlDatabase) ExecContext(ctx context.Context, tpl string, args ...any) (Result, error) {
	var res sql.Result
	err := s.run(ctx, "exec", tpl, args, func(ctx context.Context, q string) (err error) {
		res, err = s.db.ExecContext(ctx, q)
		return err
	})
	if err != nil {
		return nil, wrap("exec", err)
	}
	return res, nil
}

// PingContext verifies the connection to the database is alive.
func (s *SqlDatabase) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SqlDatabase) Close() error { return s.db.Close() }

// SetMaxOpenConns sets the maximum number of open connections.
func (s *SqlDatabase) SetMaxOpenConns(n int) { s.db.SetMaxOpenConns(n) }

// SetMaxIdleConns sets the maximum number of idle connections.
func (s *SqlDatabase) SetMaxIdleConns(n int) { s.db.SetMaxIdleConns(n) }

// Assert that SqlDatabase implements the Database interface.
var _ Database = (*SqlDatabase)(nil)
