package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"github.com/Konsultn-Engineering/sqltpl/connector"
	"github.com/Konsultn-Engineering/sqltpl/database"
	"github.com/Konsultn-Engineering/sqltpl/dialect"
)

// Provider opens MySQL compatible servers through go-sql-driver/mysql. TiDB
// differs only in its dialect name.
type Provider struct {
	tidb bool
}

func init() {
	connector.Register("mysql", &Provider{})
	connector.Register("tidb", &Provider{tidb: true})
}

func (p *Provider) Open(ctx context.Context, cfg connector.Config, opts ...database.Option) (database.Database, error) {
	db, err := sql.Open("mysql", connector.MySQLDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("mysql: open: %w", err)
	}

	db.SetMaxOpenConns(cfg.Pool.MaxOpen)
	db.SetMaxIdleConns(cfg.Pool.MaxIdle)
	db.SetConnMaxLifetime(cfg.Pool.MaxLifetime)
	db.SetConnMaxIdleTime(cfg.Pool.MaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql: ping: %w", err)
	}

	return database.NewSqlDatabase(db, p.dialect(cfg), opts...), nil
}

// dialect follows the session sql_mode: with NO_BACKSLASH_ESCAPES the server
// reads backslashes literally, so only quotes may be escaped.
func (p *Provider) dialect(cfg connector.Config) dialect.Dialect {
	noBackslash := strings.Contains(strings.ToUpper(cfg.Params["sql_mode"]), "NO_BACKSLASH_ESCAPES")
	m := &dialect.MySQL{NoBackslashEscapes: noBackslash}
	if p.tidb {
		return &dialect.TiDB{MySQL: m}
	}
	return m
}
