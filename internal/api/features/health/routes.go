// Package health provides the service health endpoint.
package health

import "github.com/go-chi/chi/v5"

// SetupRoutes registers the health route.
func SetupRoutes(router chi.Router) {
	router.Get("/health", Health)
}
