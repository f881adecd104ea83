package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/Konsultn-Engineering/sqltpl/dialect"
	"github.com/Konsultn-Engineering/sqltpl/query"
)

// Database builds query templates with its dialect and executes the result.
// Templates are substituted client side, so statements are sent without bind
// arguments.
type Database interface {
	Builder() *query.Builder
	Build(tpl string, args ...any) (string, error)
	QueryContext(ctx context.Context, tpl string, args ...any) (Rows, error)
	ExecContext(ctx context.Context, tpl string, args ...any) (Result, error)
	PingContext(ctx context.Context) error
	Dialect() dialect.Dialect
	Close() error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Columns() ([]string, error)
	Err() error
}

type Result interface {
	LastInsertId() (int64, error)
	RowsAffected() (int64, error)
}

type Option func(*options)

type options struct {
	logger      *slog.Logger
	builderOpts []query.Option
}

// WithLogger sets the logger for executed statements and build failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
		o.builderOpts = append(o.builderOpts, query.WithLogger(l))
	}
}

// WithBuilderOptions passes extra options to the query builder.
func WithBuilderOptions(opts ...query.Option) Option {
	return func(o *options) {
		o.builderOpts = append(o.builderOpts, opts...)
	}
}

// base holds what every Database implementation shares: the dialect-bound
// builder and statement logging.
type base struct {
	builder *query.Builder
	logger  *slog.Logger
}

func newBase(d dialect.Dialect, opts []Option) base {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	builderOpts := append([]query.Option{query.WithDialect(d)}, o.builderOpts...)
	return base{
		builder: query.New(builderOpts...),
		logger:  o.logger,
	}
}

func (b base) Builder() *query.Builder { return b.builder }

func (b base) Dialect() dialect.Dialect { return b.builder.Dialect() }

func (b base) Build(tpl string, args ...any) (string, error) {
	return b.builder.Build(tpl, args...)
}

// run builds tpl and hands the text to exec, logging the statement under a
// fresh query id.
func (b base) run(ctx context.Context, op, tpl string, args []any, exec func(ctx context.Context, sql string) error) error {
	sql, err := b.builder.Build(tpl, args...)
	if err != nil {
		return err
	}

	id := ulid.Make().String()
	start := time.Now()
	err = exec(ctx, sql)
	b.logger.DebugContext(ctx, "statement executed",
		"op", op,
		"query_id", id,
		"sql", sql,
		"duration", time.Since(start),
		"error", err,
	)
	return err
}
