// Package costcache memoizes cost parsing and interpretation enumeration.
//
// The core mana package deliberately carries no cache: callers have
// different lifetimes and invalidation needs. This wrapper is the common
// case — a fixed-size LRU keyed by the raw cost text, with the
// interpretation list materialized once per entry. SQL function dispatch
// parses the same handful of costs millions of times during a table scan,
// which is exactly the access pattern an LRU wants.
package costcache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/tapline/manaql/mana"
)

// DefaultSize is the entry capacity used by New when size is not positive.
const DefaultSize = 4096

// Cache is a concurrency-safe memoizing front for mana.ParseCost.
type Cache struct {
	entries *lru.Cache
}

// Entry pairs a parsed cost with its lazily materialized interpretations.
type Entry struct {
	Cost *mana.Cost

	once    sync.Once
	interps []mana.Interpretation
}

// New returns a cache holding at most size entries.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached entry for text, parsing on first sight. Like
// mana.ParseCost it never fails.
func (c *Cache) Get(text string) *Entry {
	if v, ok := c.entries.Get(text); ok {
		return v.(*Entry)
	}
	entry := &Entry{Cost: mana.ParseCost(text)}
	c.entries.Add(text, entry)
	return entry
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Interpretations returns the entry's interpretation list, enumerating it
// on first call and reusing the same slice afterwards. Callers must not
// modify the returned slice.
func (e *Entry) Interpretations() []mana.Interpretation {
	e.once.Do(func() {
		e.interps = e.Cost.Interpretations()
	})
	return e.interps
}

// The entry relations mirror mana.Cost's but walk the reified slices, so
// repeated comparisons against the same cost pay the enumeration once.

func (e *Entry) Equal(rhs *Entry) bool     { return e.exists(rhs, mana.Interpretation.Equal) }
func (e *Entry) Less(rhs *Entry) bool      { return e.exists(rhs, mana.Interpretation.Less) }
func (e *Entry) LessEq(rhs *Entry) bool    { return e.exists(rhs, mana.Interpretation.LessEq) }
func (e *Entry) Greater(rhs *Entry) bool   { return rhs.Less(e) }
func (e *Entry) GreaterEq(rhs *Entry) bool { return rhs.LessEq(e) }

func (e *Entry) exists(rhs *Entry, rel func(mana.Interpretation, mana.Interpretation) bool) bool {
	for _, left := range e.Interpretations() {
		for _, right := range rhs.Interpretations() {
			if rel(left, right) {
				return true
			}
		}
	}
	return false
}
