package dialect

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (p Postgres) Name() string {
	return NamePostgres
}

// QuoteIdentifier double-quotes name. Embedded double quotes are doubled and
// NUL bytes dropped.
func (p Postgres) QuoteIdentifier(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// Escape assumes standard_conforming_strings=on (the default since 9.1), so
// backslashes are literal and only the quote needs doubling.
func (p Postgres) Escape(raw string) string {
	raw = strings.ReplaceAll(raw, "\x00", "")
	return strings.ReplaceAll(raw, "'", "''")
}
