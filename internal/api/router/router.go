// Package router sets up HTTP routes for the API server.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	healthFeature "github.com/crumbwork/ladle/internal/api/features/health"
	recipesFeature "github.com/crumbwork/ladle/internal/api/features/recipes"
	"github.com/crumbwork/ladle/internal/store"
)

// SetupRoutes configures all routes for the API server.
func SetupRoutes(router chi.Router, st store.Store, defaultLimit int, logger *slog.Logger) {
	healthFeature.SetupRoutes(router)
	recipesFeature.SetupRoutes(router, st, defaultLimit, logger)
}
