package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crumbwork/ladle/internal/config"
	"github.com/crumbwork/ladle/internal/recipe"
	"github.com/crumbwork/ladle/internal/seed"
	"github.com/crumbwork/ladle/internal/store"
)

// openStore builds the configured backing store. SQL stores are opened with
// migrations applied; the memory store is populated from the seed file or the
// embedded default set.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.StoreType {
	case config.StoreMemory:
		recipes, err := loadSeedRecipes(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewMemory(recipes, logger)

	case config.StoreSQLite:
		if cfg.DatabasePath != ":memory:" {
			if dir := filepath.Dir(cfg.DatabasePath); dir != "." && dir != "" {
				if err := os.MkdirAll(dir, 0750); err != nil {
					return nil, fmt.Errorf("failed to create database directory: %w", err)
				}
			}
		}
		s := store.NewSQLite(logger)
		if err := s.Open(cfg.DatabasePath); err != nil {
			return nil, err
		}
		return s, nil

	case config.StorePostgres:
		p := store.NewPostgres(logger)
		if err := p.Open(ctx, cfg.DSN); err != nil {
			return nil, err
		}
		return p, nil

	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}
}

// loadSeedRecipes reads the configured seed file, or the embedded default
// set when none is configured.
func loadSeedRecipes(cfg *config.Config) ([]recipe.Recipe, error) {
	if cfg.SeedFile != "" {
		return seed.LoadFile(cfg.SeedFile)
	}
	return seed.Default()
}
