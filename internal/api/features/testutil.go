// Package features provides shared test utilities for API feature tests.
package features

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/crumbwork/ladle/internal/seed"
	"github.com/crumbwork/ladle/internal/store"
	"github.com/crumbwork/ladle/internal/testutil"
)

// SetupTestStore creates a memory store seeded with the default recipes.
func SetupTestStore(t *testing.T) store.Store {
	t.Helper()

	recipes, err := seed.Default()
	require.NoError(t, err)

	m, err := store.NewMemory(recipes, testutil.NewTestLogger(t))
	require.NoError(t, err)

	t.Cleanup(func() { _ = m.Close() })
	return m
}

// RequestWithPathParam wraps a request with chi URL params, for calling
// handlers directly without a router.
func RequestWithPathParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
