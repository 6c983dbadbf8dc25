package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crumbwork/ladle/internal/recipe"
	"github.com/crumbwork/ladle/internal/seed"
	"github.com/crumbwork/ladle/internal/testutil"
)

func newSQLiteStore(t *testing.T) *SQLite {
	t.Helper()

	s := NewSQLite(testutil.NewTestLogger(t))
	require.NoError(t, s.Open(":memory:"))
	t.Cleanup(func() { _ = s.Close() })

	recipes, err := seed.Default()
	require.NoError(t, err)

	n, err := s.Seed(context.Background(), recipes)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	return s
}

func TestSQLiteOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipes.db")

	s := NewSQLite(testutil.NewTestLogger(t))
	require.NoError(t, s.Open(path))
	require.NoError(t, s.Close())

	// Reopening runs migrations idempotently.
	s2 := NewSQLite(testutil.NewTestLogger(t))
	require.NoError(t, s2.Open(path))
	require.NoError(t, s2.Close())
}

func TestSQLiteSeedIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	recipes, err := seed.Default()
	require.NoError(t, err)

	n, err := s.Seed(ctx, recipes)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, err := s.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSQLiteList(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero limit", 0, 0},
		{"limit below size", 2, 2},
		{"limit beyond size", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.List(ctx, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	t.Run("negative limit", func(t *testing.T) {
		_, err := s.List(ctx, -1)
		assert.ErrorIs(t, err, recipe.ErrInvalidLimit)
	})

	t.Run("order", func(t *testing.T) {
		got, err := s.List(ctx, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
		assert.Equal(t, int64(3), got[2].ID)
	})
}

func TestSQLiteGet(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	t.Run("found", func(t *testing.T) {
		got, err := s.Get(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, "Chicken Paprikash", got.Label)
		assert.Equal(t, "No Recipes", got.Source)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.Get(ctx, 99)
		assert.ErrorIs(t, err, recipe.ErrNotFound)
	})
}

func TestSQLiteSearch(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)

	t.Run("case-insensitive match", func(t *testing.T) {
		got, err := s.Search(ctx, "CHICKEN", 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Chicken Vesuvio", got[0].Label)
		assert.Equal(t, "Chicken Paprikash", got[1].Label)
	})

	t.Run("limit caps matches", func(t *testing.T) {
		got, err := s.Search(ctx, "chicken", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(1), got[0].ID)
	})

	t.Run("empty keyword lists", func(t *testing.T) {
		got, err := s.Search(ctx, "", 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no matches", func(t *testing.T) {
		got, err := s.Search(ctx, "lasagna", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("keyword with LIKE metacharacters", func(t *testing.T) {
		got, err := s.Search(ctx, "%", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := s.Search(ctx, "chicken", -1)
		assert.ErrorIs(t, err, recipe.ErrInvalidLimit)
	})
}
