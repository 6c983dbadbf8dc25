package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/crumbwork/ladle/internal/recipe"
	"github.com/crumbwork/ladle/internal/seed"
)

// Memory is an in-memory Store backed by a recipe.Catalog. Queries are pure
// reads; the mutex only guards the catalog pointer swap during reload.
type Memory struct {
	mu      sync.RWMutex
	catalog *recipe.Catalog
	logger  *slog.Logger
}

// NewMemory creates a memory store over the given records.
func NewMemory(recipes []recipe.Recipe, logger *slog.Logger) (*Memory, error) {
	catalog, err := recipe.NewCatalog(recipes)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Memory{catalog: catalog, logger: logger}, nil
}

// List implements Store.
func (m *Memory) List(_ context.Context, limit int) ([]recipe.Recipe, error) {
	return m.snapshot().List(limit)
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, id int64) (recipe.Recipe, error) {
	return m.snapshot().Get(id)
}

// Search implements Store.
func (m *Memory) Search(_ context.Context, keyword string, limit int) ([]recipe.Recipe, error) {
	return m.snapshot().Search(keyword, limit)
}

// Close implements Store.
func (m *Memory) Close() error {
	return nil
}

// Len returns the number of recipes currently held.
func (m *Memory) Len() int {
	return m.snapshot().Len()
}

// ReloadFromFile replaces the collection with the contents of a seed file.
// In-flight queries keep reading the snapshot they started with.
func (m *Memory) ReloadFromFile(path string) error {
	recipes, err := seed.LoadFile(path)
	if err != nil {
		return err
	}

	catalog, err := recipe.NewCatalog(recipes)
	if err != nil {
		return fmt.Errorf("failed to rebuild catalog: %w", err)
	}

	m.mu.Lock()
	m.catalog = catalog
	m.mu.Unlock()

	m.logger.Info("reloaded recipe collection", "path", path, "recipes", catalog.Len())
	return nil
}

func (m *Memory) snapshot() *recipe.Catalog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.catalog
}
