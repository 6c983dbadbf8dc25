package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipes() []Recipe {
	return []Recipe{
		{ID: 1, Label: "Chicken Vesuvio", Source: "Serious Eats", URL: "http://www.seriouseats.com/recipes/2011/12/chicken-vesuvio-recipe.html"},
		{ID: 2, Label: "Chicken Paprikash", Source: "No Recipes", URL: "http://norecipes.com/recipe/chicken-paprikash/"},
		{ID: 3, Label: "Cauliflower and Tofu Curry Recipe", Source: "Serious Eats", URL: "http://www.seriouseats.com/recipes/2011/02/cauliflower-and-tofu-curry-recipe.html"},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(testRecipes())
	require.NoError(t, err)
	return c
}

func TestNewCatalog(t *testing.T) {
	t.Run("valid collection", func(t *testing.T) {
		c, err := NewCatalog(testRecipes())
		require.NoError(t, err)
		assert.Equal(t, 3, c.Len())
	})

	t.Run("empty collection", func(t *testing.T) {
		c, err := NewCatalog(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewCatalog([]Recipe{
			{ID: 1, Label: "First"},
			{ID: 1, Label: "Second"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate recipe id 1")
	})

	t.Run("non-positive id", func(t *testing.T) {
		_, err := NewCatalog([]Recipe{{ID: 0, Label: "Zero"}})
		require.Error(t, err)
	})

	t.Run("does not alias caller slice", func(t *testing.T) {
		recipes := testRecipes()
		c, err := NewCatalog(recipes)
		require.NoError(t, err)

		recipes[0].Label = "mutated"

		got, err := c.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "Chicken Vesuvio", got.Label)
	})
}

func TestCatalogList(t *testing.T) {
	c := newTestCatalog(t)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero limit", 0, 0},
		{"limit below size", 2, 2},
		{"limit equals size", 3, 3},
		{"limit beyond size", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.List(tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)

			// Insertion order is preserved.
			for i := 1; i < len(got); i++ {
				assert.Less(t, got[i-1].ID, got[i].ID)
			}
		})
	}

	t.Run("negative limit", func(t *testing.T) {
		_, err := c.List(-1)
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})
}

func TestCatalogGet(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("found", func(t *testing.T) {
		got, err := c.Get(2)
		require.NoError(t, err)
		assert.Equal(t, "Chicken Paprikash", got.Label)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := c.Get(99)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("distinct ids never overlap", func(t *testing.T) {
		a, err := c.Get(1)
		require.NoError(t, err)
		b, err := c.Get(3)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
		assert.NotEqual(t, a.Label, b.Label)
	})
}

func TestCatalogSearch(t *testing.T) {
	c := newTestCatalog(t)

	t.Run("case-insensitive keyword match", func(t *testing.T) {
		got, err := c.Search("chicken", 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("limit caps matches", func(t *testing.T) {
		got, err := c.Search("chicken", 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Chicken Vesuvio", got[0].Label)
	})

	t.Run("mixed case keyword", func(t *testing.T) {
		got, err := c.Search("ChIcKeN", 10)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no matches is empty, not an error", func(t *testing.T) {
		got, err := c.Search("lasagna", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty keyword equals list", func(t *testing.T) {
		for _, limit := range []int{0, 1, 2, 3, 10} {
			listed, err := c.List(limit)
			require.NoError(t, err)
			searched, err := c.Search("", limit)
			require.NoError(t, err)
			assert.Equal(t, listed, searched, "limit %d", limit)
		}
	})

	t.Run("negative limit", func(t *testing.T) {
		_, err := c.Search("chicken", -1)
		assert.ErrorIs(t, err, ErrInvalidLimit)
	})

	t.Run("results all contain keyword", func(t *testing.T) {
		got, err := c.Search("recipe", 10)
		require.NoError(t, err)
		require.NotEmpty(t, got)
		for _, r := range got {
			assert.True(t, MatchesKeyword(r.Label, "recipe"), "label %q", r.Label)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := c.Search("chicken", 10)
		require.NoError(t, err)
		second, err := c.Search("chicken", 10)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
