// Package catalog matches free-text queries against a fixed catalog of known
// food items for search-as-you-type suggestions.
package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// DefaultLimit is the result cap used by Search when no positive limit is given.
const DefaultLimit = 8

// FoodItem is a read-only catalog entry.
type FoodItem struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Category string   `json:"category"`
	Aliases  []string `json:"aliases,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

func (f FoodItem) clone() FoodItem {
	f.Aliases = slices.Clone(f.Aliases)
	f.Keywords = slices.Clone(f.Keywords)
	return f
}

// entry pairs a catalog item with its normalized match strings.
type entry struct {
	item     FoodItem
	name     string
	aliases  []string
	keywords []string
}

func (e *entry) aliasEquals(q string) bool {
	return slices.Contains(e.aliases, q)
}

func (e *entry) aliasHasPrefix(q string) bool {
	return slices.ContainsFunc(e.aliases, func(a string) bool { return strings.HasPrefix(a, q) })
}

func (e *entry) nameOrAliasContains(q string) bool {
	if strings.Contains(e.name, q) {
		return true
	}
	return slices.ContainsFunc(e.aliases, func(a string) bool { return strings.Contains(a, q) })
}

func (e *entry) keywordContains(q string) bool {
	return slices.ContainsFunc(e.keywords, func(k string) bool { return strings.Contains(k, q) })
}

// Catalog is an immutable, ordered set of food items. It is safe for
// concurrent use.
type Catalog struct {
	entries []entry
}

// New builds a catalog from items, preserving their order. Names must be
// non-empty and unique after normalization.
func New(items []FoodItem) (*Catalog, error) {
	seen := make(map[string]bool, len(items))
	entries := make([]entry, 0, len(items))
	for i, it := range items {
		name := normalize(it.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog entry %d: empty name", i)
		}
		if seen[name] {
			return nil, fmt.Errorf("catalog entry %d: duplicate name %q", i, it.Name)
		}
		seen[name] = true
		entries = append(entries, entry{
			item:     it.clone(),
			name:     name,
			aliases:  normalizeAll(it.Aliases),
			keywords: normalizeAll(it.Keywords),
		})
	}
	return &Catalog{entries: entries}, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in food catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := New(foods)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Items returns a copy of every entry in catalog order.
func (c *Catalog) Items() []FoodItem {
	out := make([]FoodItem, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].item.clone()
	}
	return out
}

// Find returns the single best entry for query. Matching is case-insensitive
// and whitespace-trimmed; the first rule that matches any entry decides:
// exact name, exact alias, substring of name or alias, substring of keyword.
// An empty query matches nothing.
func (c *Catalog) Find(query string) (FoodItem, bool) {
	q := normalize(query)
	if q == "" {
		return FoodItem{}, false
	}

	rules := []func(*entry) bool{
		func(e *entry) bool { return e.name == q },
		func(e *entry) bool { return e.aliasEquals(q) },
		func(e *entry) bool { return e.nameOrAliasContains(q) },
		func(e *entry) bool { return e.keywordContains(q) },
	}
	for _, rule := range rules {
		for i := range c.entries {
			if rule(&c.entries[i]) {
				return c.entries[i].item.clone(), true
			}
		}
	}
	return FoodItem{}, false
}

// Lookup returns the entry whose name or alias equals query exactly. It is
// the strict subset of Find used for categorizing free text.
func (c *Catalog) Lookup(query string) (FoodItem, bool) {
	q := normalize(query)
	if q == "" {
		return FoodItem{}, false
	}
	for i := range c.entries {
		if c.entries[i].name == q {
			return c.entries[i].item.clone(), true
		}
	}
	for i := range c.entries {
		if c.entries[i].aliasEquals(q) {
			return c.entries[i].item.clone(), true
		}
	}
	return FoodItem{}, false
}

// Search returns up to limit entries ranked exact name > name prefix >
// alias prefix > substring of name or alias. Each pass keeps catalog order
// and skips entries already collected. A limit <= 0 means DefaultLimit.
func (c *Catalog) Search(query string, limit int) []FoodItem {
	q := normalize(query)
	if q == "" {
		return []FoodItem{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	passes := []func(*entry) bool{
		func(e *entry) bool { return e.name == q },
		func(e *entry) bool { return strings.HasPrefix(e.name, q) },
		func(e *entry) bool { return e.aliasHasPrefix(q) },
		func(e *entry) bool { return e.nameOrAliasContains(q) },
	}

	collected := make([]bool, len(c.entries))
	results := make([]FoodItem, 0, min(limit, len(c.entries)))
	for _, pass := range passes {
		for i := range c.entries {
			if len(results) == limit {
				return results
			}
			if collected[i] || !pass(&c.entries[i]) {
				continue
			}
			collected[i] = true
			results = append(results, c.entries[i].item.clone())
		}
	}
	return results
}

// FindFoodItem runs Find against the default catalog.
func FindFoodItem(query string) (FoodItem, bool) {
	return Default().Find(query)
}

// SearchFoodItems runs Search against the default catalog.
func SearchFoodItems(query string, limit int) []FoodItem {
	return Default().Search(query, limit)
}
