package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefrecipes/server/internal/chefdb"
)

func TestDemoStoreRecipes(t *testing.T) {
	t.Parallel()

	store := NewDemoStore()

	recipes, err := store.Recipes(t.Context())
	require.NoError(t, err)
	require.NotEmpty(t, recipes)

	for i, r := range recipes {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Title)
		assert.True(t, r.Published)
		assert.GreaterOrEqual(t, r.Price, int64(0))
		if i > 0 {
			assert.Greater(t, r.Order, recipes[i-1].Order)
		}
	}

	published, err := store.PublishedRecipes(t.Context())
	require.NoError(t, err)
	assert.Equal(t, recipes, published)
}

func TestDemoStoreRecipe(t *testing.T) {
	t.Parallel()

	store := NewDemoStore()

	recipe, err := store.Recipe(t.Context(), "perfect-steak")
	require.NoError(t, err)
	assert.Equal(t, "Perfect Ribeye Steak", recipe.Title)
	assert.NotEmpty(t, recipe.Videos)

	_, err = store.Recipe(t.Context(), "unknown")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDemoStoreWritesNotConfigured(t *testing.T) {
	t.Parallel()

	store := NewDemoStore()

	assert.ErrorIs(t, store.SaveRecipe(t.Context(), chefdb.Recipe{ID: "r1"}), ErrNotConfigured)
	assert.ErrorIs(t, store.DeleteRecipe(t.Context(), "r1"), ErrNotConfigured)
	assert.ErrorIs(t, store.SaveSiteSettings(t.Context(), map[string]any{"heroTitle": "x"}), ErrNotConfigured)
}

func TestDemoStoreSiteSettings(t *testing.T) {
	t.Parallel()

	store := NewDemoStore()

	settings, err := store.SiteSettings(t.Context())
	require.NoError(t, err)
	assert.Equal(t, DefaultSiteSettings(), settings)
	assert.NotEmpty(t, settings.Features)
	assert.NotEmpty(t, settings.Categories)
	assert.Positive(t, settings.RecipesPerPage)
}
