package query

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/Konsultn-Engineering/sqltpl/cache"
	"github.com/Konsultn-Engineering/sqltpl/dialect"
)

// Builder turns query templates into SQL text. It is immutable once built
// and safe for concurrent use.
//
// Placeholders:
//
//	?   scalar inferred from the argument: NULL, 1/0, number or quoted string
//	?d  integer
//	?f  floating point number
//	?a  list (v1, v2) or keyed mapping (`k1` = v1, `k2` = v2)
//	?#  identifier or list of identifiers
//
// A {...} block consumes one argument and is omitted when that argument is
// missing or Skip(); otherwise its body is built with that argument alone.
type Builder struct {
	formatter
	logger *slog.Logger
	cache  *cache.TemplateCache[*template]
}

type Option func(*Builder)

// WithDialect sets the escaping and identifier quoting rules. Defaults to MySQL.
func WithDialect(d dialect.Dialect) Option {
	return func(b *Builder) {
		if d != nil {
			b.dialect = d
		}
	}
}

// WithLogger sets the logger receiving the causes of failed builds. Defaults
// to slog.Default() at the time of the failure.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithCacheSize bounds the number of compiled templates kept. A size of zero
// or less disables caching.
func WithCacheSize(size int) Option {
	return func(b *Builder) {
		if size <= 0 {
			b.cache = nil
			return
		}
		b.cache = cache.NewTemplateCache[*template](size)
	}
}

func New(opts ...Option) *Builder {
	b := &Builder{
		formatter: formatter{dialect: dialect.NewMySQLDialect()},
		cache:     cache.NewTemplateCache[*template](cache.DefaultTemplateCacheSize),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) Dialect() dialect.Dialect {
	return b.dialect
}

// Build is BuildQuery with conditional blocks enabled.
func (b *Builder) Build(tpl string, args ...any) (string, error) {
	return b.BuildQuery(tpl, args, true)
}

// BuildQuery substitutes args into tpl. Without arguments tpl is returned
// unchanged. Any failure is reported as ErrBuildFailed alone.
func (b *Builder) BuildQuery(tpl string, args []any, handleBlocks bool) (string, error) {
	out, err := b.build(tpl, args, handleBlocks)
	if err != nil {
		b.log().Debug("query build failed", "template", tpl, "args", len(args), "error", err)
		return "", ErrBuildFailed
	}
	return out, nil
}

func (b *Builder) build(tpl string, args []any, blocks bool) (string, error) {
	if len(args) == 0 {
		return tpl, nil
	}

	t, err := b.compiled(tpl, blocks)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(tpl) + 8*len(args))
	idx := 0
	for _, seg := range t.segments {
		switch seg.kind {
		case segmentLiteral:
			sb.WriteString(seg.text)

		case segmentPlaceholder:
			if idx >= len(args) {
				return "", &MissingArgumentError{Index: idx, Count: len(args)}
			}
			s, err := b.format(seg.mod, args[idx])
			if err != nil {
				return "", err
			}
			sb.WriteString(s)
			idx++

		case segmentBlock:
			if idx < len(args) && !IsSkip(args[idx]) {
				s, err := b.build(seg.text, args[idx:idx+1], false)
				if err != nil {
					return "", err
				}
				sb.WriteString(s)
			}
			idx++
		}
	}
	return strings.TrimRightFunc(sb.String(), unicode.IsSpace), nil
}

func (b *Builder) compiled(tpl string, blocks bool) (*template, error) {
	if b.cache == nil {
		return compile(tpl, blocks)
	}
	if t, ok := b.cache.Get(tpl, blocks); ok {
		return t, nil
	}
	t, err := compile(tpl, blocks)
	if err != nil {
		return nil, err
	}
	b.cache.Add(tpl, blocks, t)
	return t, nil
}

func (b *Builder) log() *slog.Logger {
	if b.logger != nil {
		return b.logger
	}
	return slog.Default()
}

var defaultBuilder = New()

// Build builds tpl with a shared MySQL Builder.
func Build(tpl string, args ...any) (string, error) {
	return defaultBuilder.Build(tpl, args...)
}
