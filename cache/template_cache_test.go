package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateCacheGetAdd(t *testing.T) {
	c := NewTemplateCache[[]string](4)

	_, ok := c.Get("SELECT ?", true)
	assert.False(t, ok)

	c.Add("SELECT ?", true, []string{"SELECT ", "?"})
	got, ok := c.Get("SELECT ?", true)
	require.True(t, ok)
	assert.Equal(t, []string{"SELECT ", "?"}, got)

	_, ok = c.Get("SELECT ?", false)
	assert.False(t, ok, "block mode is part of the key")
}

func TestTemplateCacheEviction(t *testing.T) {
	c := NewTemplateCache[int](2)
	c.Add("a", true, 1)
	c.Add("b", true, 2)
	c.Add("c", true, 3)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("a", true)
	assert.False(t, ok, "least recently used entry should be evicted")

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestTemplateCacheDefaultSize(t *testing.T) {
	c := NewTemplateCache[int](0)
	for i := 0; i < DefaultTemplateCacheSize+10; i++ {
		c.Add(fmt.Sprintf("tpl-%d", i), true, i)
	}
	assert.Equal(t, DefaultTemplateCacheSize, c.Len())
}

func TestTemplateCacheConcurrent(t *testing.T) {
	c := NewTemplateCache[int](64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("tpl-%d", j%16)
				c.Add(key, true, j)
				c.Get(key, true)
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
