package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/sqltpl/connector"
	"github.com/Konsultn-Engineering/sqltpl/dialect"
)

func TestRegistered(t *testing.T) {
	drivers := connector.Drivers()
	assert.Contains(t, drivers, "mysql")
	assert.Contains(t, drivers, "tidb")
}

func TestDialect(t *testing.T) {
	d := (&Provider{}).dialect(connector.Config{})
	assert.Equal(t, dialect.NameMySQL, d.Name())
	assert.Equal(t, `a\'b`, d.Escape("a'b"))

	d = (&Provider{}).dialect(connector.Config{Params: map[string]string{"sql_mode": "'ANSI_QUOTES,no_backslash_escapes'"}})
	assert.Equal(t, `a''b\`, d.Escape(`a'b\`))

	d = (&Provider{tidb: true}).dialect(connector.Config{})
	assert.Equal(t, dialect.NameTiDB, d.Name())
	assert.Equal(t, "`t`", d.QuoteIdentifier("t"))
}

func TestOpenUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := connector.Config{Driver: "mysql", Host: "127.0.0.1", Port: 1, ConnectTimeout: time.Second}
	_, err := connector.Open(ctx, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql: ping")
}
