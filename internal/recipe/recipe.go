// Package recipe defines the recipe record and the in-memory catalog that
// answers lookup queries. The catalog owns an immutable snapshot of records;
// callers inject the collection at construction time.
package recipe

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by catalog and store operations.
var (
	// ErrNotFound indicates no recipe matches the requested id.
	ErrNotFound = errors.New("recipe not found")

	// ErrInvalidLimit indicates a negative result limit.
	ErrInvalidLimit = errors.New("limit must not be negative")
)

// Recipe is a single immutable recipe record.
type Recipe struct {
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Source string `json:"source"`
	URL    string `json:"url"`
}

// Catalog answers read-only queries over a fixed collection of recipes.
// All operations are pure; concurrent use requires no locking.
type Catalog struct {
	recipes []Recipe
	byID    map[int64]int
}

// NewCatalog builds a catalog from the given records, preserving their order.
// IDs must be positive and unique within the collection.
func NewCatalog(recipes []Recipe) (*Catalog, error) {
	byID := make(map[int64]int, len(recipes))
	owned := make([]Recipe, len(recipes))
	copy(owned, recipes)

	for i, r := range owned {
		if r.ID <= 0 {
			return nil, fmt.Errorf("recipe %q: id must be positive, got %d", r.Label, r.ID)
		}
		if prev, ok := byID[r.ID]; ok {
			return nil, fmt.Errorf("duplicate recipe id %d (%q and %q)", r.ID, owned[prev].Label, r.Label)
		}
		byID[r.ID] = i
	}

	return &Catalog{recipes: owned, byID: byID}, nil
}

// Len returns the number of recipes in the catalog.
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// List returns the first limit recipes in collection order. A limit of zero
// yields an empty result; a limit beyond the collection size yields the whole
// collection. Negative limits are rejected with ErrInvalidLimit.
func (c *Catalog) List(limit int) ([]Recipe, error) {
	if limit < 0 {
		return nil, fmt.Errorf("list: %w", ErrInvalidLimit)
	}
	return takeFirst(c.recipes, limit), nil
}

// Get returns the recipe with the given id, or ErrNotFound.
func (c *Catalog) Get(id int64) (Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		return Recipe{}, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}
	return c.recipes[i], nil
}

// Search returns up to limit recipes whose label contains keyword,
// case-insensitively, in collection order. An empty keyword is equivalent to
// List. An empty match set is not an error.
func (c *Catalog) Search(keyword string, limit int) ([]Recipe, error) {
	if limit < 0 {
		return nil, fmt.Errorf("search: %w", ErrInvalidLimit)
	}
	if keyword == "" {
		return takeFirst(c.recipes, limit), nil
	}

	var matches []Recipe
	for _, r := range c.recipes {
		if len(matches) == limit {
			break
		}
		if MatchesKeyword(r.Label, keyword) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// MatchesKeyword reports whether label contains keyword case-insensitively.
func MatchesKeyword(label, keyword string) bool {
	return strings.Contains(strings.ToLower(label), strings.ToLower(keyword))
}

// takeFirst returns a copy of at most limit leading elements. The copy keeps
// callers from aliasing the catalog's backing array.
func takeFirst(recipes []Recipe, limit int) []Recipe {
	if limit > len(recipes) {
		limit = len(recipes)
	}
	out := make([]Recipe, limit)
	copy(out, recipes[:limit])
	return out
}
