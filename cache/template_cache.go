package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Konsultn-Engineering/sqltpl/utils"
)

const DefaultTemplateCacheSize = 256

type templateEntry[T any] struct {
	source   string
	blocks   bool
	compiled T
}

// TemplateCache keeps compiled query templates keyed by their fingerprint.
// Hits are verified against the source text, so fingerprint collisions only
// cost a recompilation. Safe for concurrent use.
type TemplateCache[T any] struct {
	cache *lru.Cache[uint64, templateEntry[T]]
}

func NewTemplateCache[T any](size int) *TemplateCache[T] {
	if size <= 0 {
		size = DefaultTemplateCacheSize
	}
	c, _ := lru.New[uint64, templateEntry[T]](size)
	return &TemplateCache[T]{cache: c}
}

func (c *TemplateCache[T]) Get(source string, blocks bool) (T, bool) {
	e, ok := c.cache.Get(utils.FingerprintTemplate(source, blocks))
	if !ok || e.source != source || e.blocks != blocks {
		var zero T
		return zero, false
	}
	return e.compiled, true
}

func (c *TemplateCache[T]) Add(source string, blocks bool, compiled T) {
	c.cache.Add(utils.FingerprintTemplate(source, blocks), templateEntry[T]{
		source:   source,
		blocks:   blocks,
		compiled: compiled,
	})
}

func (c *TemplateCache[T]) Len() int {
	return c.cache.Len()
}

func (c *TemplateCache[T]) Purge() {
	c.cache.Purge()
}
