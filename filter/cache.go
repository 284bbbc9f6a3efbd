package filter

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// filterCache is a thread-safe LRU of compiled filters keyed by expression
type filterCache struct {
	lru *lru.Cache[string, CompiledFilter]
}

// newFilterCache creates a cache holding at most size filters
func newFilterCache(size int) (*filterCache, error) {
	c, err := lru.New[string, CompiledFilter](size)
	if err != nil {
		return nil, err
	}
	return &filterCache{lru: c}, nil
}

func (c *filterCache) Get(expression string) (CompiledFilter, bool) {
	return c.lru.Get(expression)
}

func (c *filterCache) Put(expression string, filter CompiledFilter) {
	c.lru.Add(expression, filter)
}

func (c *filterCache) Clear() {
	c.lru.Purge()
}

func (c *filterCache) Size() int {
	return c.lru.Len()
}
