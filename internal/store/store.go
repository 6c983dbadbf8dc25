// Package store provides the backing-store seam for the recipe catalog.
// Implementations answer the same three query shapes as recipe.Catalog and
// translate their failures into the recipe sentinel errors, so callers stay
// backend-agnostic.
package store

import (
	"context"

	"github.com/crumbwork/ladle/internal/recipe"
)

// Store answers read-only recipe queries.
type Store interface {
	// List returns the first limit recipes in collection order.
	List(ctx context.Context, limit int) ([]recipe.Recipe, error)

	// Get returns the recipe with the given id, or recipe.ErrNotFound.
	Get(ctx context.Context, id int64) (recipe.Recipe, error)

	// Search returns up to limit recipes whose label contains keyword
	// case-insensitively. An empty keyword behaves like List.
	Search(ctx context.Context, keyword string, limit int) ([]recipe.Recipe, error)

	// Close releases any resources held by the store.
	Close() error
}

// Seeder is implemented by stores that can load recipe records into their
// backing database.
type Seeder interface {
	Seed(ctx context.Context, recipes []recipe.Recipe) (int, error)
}

// Reloadable is implemented by stores that can replace their collection from
// a seed file while serving. Used by the seed-file watcher.
type Reloadable interface {
	ReloadFromFile(path string) error
}
