// Package recipes provides the recipe lookup endpoints.
package recipes

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/crumbwork/ladle/internal/api/features/common"
	"github.com/crumbwork/ladle/internal/recipe"
	"github.com/crumbwork/ladle/internal/store"
)

// Handlers provides HTTP handlers for the recipes feature.
type Handlers struct {
	store        store.Store
	defaultLimit int
	logger       *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(st store.Store, defaultLimit int, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{
		store:        st,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Root lists recipes up to the default limit.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.List(r.Context(), h.defaultLimit)
	if err != nil {
		common.RespondStoreError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, ResultsResponse{Results: emptyIfNil(results)})
}

// GetByID fetches a single recipe by its id path parameter. IDs are strictly
// numeric; anything else is an invalid argument, not a silent miss.
func (h *Handlers) GetByID(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		common.RespondError(w, http.StatusBadRequest, common.CodeInvalidArgument,
			"recipe id must be an integer")
		return
	}

	result, err := h.store.Get(r.Context(), id)
	if err != nil {
		common.RespondStoreError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// Search filters recipes by a label keyword. An absent keyword lists; an
// absent max_results falls back to the default limit.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	keyword := q.Get("keyword")

	limit := h.defaultLimit
	if raw := q.Get("max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, common.CodeInvalidArgument,
				"max_results must be an integer")
			return
		}
		limit = parsed
	}

	results, err := h.store.Search(r.Context(), keyword, limit)
	if err != nil {
		common.RespondStoreError(w, h.logger, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, ResultsResponse{Results: emptyIfNil(results)})
}

// emptyIfNil keeps empty result sets serializing as [] rather than null.
func emptyIfNil(results []recipe.Recipe) []recipe.Recipe {
	if results == nil {
		return []recipe.Recipe{}
	}
	return results
}
