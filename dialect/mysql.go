package dialect

import "strings"

type MySQL struct {
	// NoBackslashEscapes mirrors the NO_BACKSLASH_ESCAPES sql_mode, where only
	// quote doubling is understood by the server.
	NoBackslashEscapes bool
}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (m MySQL) Name() string {
	return NameMySQL
}

func (m MySQL) QuoteIdentifier(name string) string {
	return "`" + name + "`"
}

// Escape follows mysql_real_escape_string: NUL, LF, CR, backslash, both quote
// characters and Ctrl-Z are backslash escaped.
func (m MySQL) Escape(raw string) string {
	if m.NoBackslashEscapes {
		return strings.ReplaceAll(raw, "'", "''")
	}
	// Fast path: nothing to escape
	if !strings.ContainsAny(raw, "\x00\n\r\\'\"\x1a") {
		return raw
	}

	var sb strings.Builder
	sb.Grow(len(raw) + 8)
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; c {
		case 0:
			sb.WriteString(`\0`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '"':
			sb.WriteString(`\"`)
		case '\x1a':
			sb.WriteString(`\Z`)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
