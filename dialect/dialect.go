package dialect

// Dialect supplies the text-level primitives a query template needs from the
// target database: literal escaping and identifier quoting.
type Dialect interface {
	Name() string
	// Escape neutralizes characters that would terminate or alter a single
	// quoted string literal. The result is not wrapped in quotes.
	Escape(raw string) string
	QuoteIdentifier(name string) string
}

const (
	NameMySQL    = "mysql"
	NameTiDB     = "tidb"
	NamePostgres = "postgres"
)

// EscapeFunc adapts a bare escaping function, typically supplied by a driver
// connection, into a Dialect with MySQL identifier quoting.
type EscapeFunc func(raw string) string

func (f EscapeFunc) Name() string { return "custom" }

func (f EscapeFunc) Escape(raw string) string { return f(raw) }

func (f EscapeFunc) QuoteIdentifier(name string) string {
	return MySQL{}.QuoteIdentifier(name)
}

// ByName returns the dialect registered under name, or nil.
func ByName(name string) Dialect {
	switch name {
	case NameMySQL:
		return NewMySQLDialect()
	case NameTiDB:
		return NewTiDBDialect()
	case NamePostgres, "pgx":
		return NewPostgresDialect()
	}
	return nil
}
