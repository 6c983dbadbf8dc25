package recipes

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/crumbwork/ladle/internal/store"
)

// SetupRoutes registers the recipe lookup routes.
func SetupRoutes(router chi.Router, st store.Store, defaultLimit int, logger *slog.Logger) {
	handlers := NewHandlers(st, defaultLimit, logger)

	router.Get("/", handlers.Root)
	router.Get("/recipe/{id}", handlers.GetByID)
	router.Get("/search", handlers.Search)
}
