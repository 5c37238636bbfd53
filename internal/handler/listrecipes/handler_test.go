package listrecipes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/catalog"
	"github.com/chefrecipes/server/internal/chefdb"
)

type fakeCatalog struct {
	recipes []chefdb.Recipe
}

func (f *fakeCatalog) Recipes(context.Context) ([]chefdb.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeCatalog) PublishedRecipes(context.Context) ([]chefdb.Recipe, error) {
	var published []chefdb.Recipe
	for _, r := range f.recipes {
		if r.Published {
			published = append(published, r)
		}
	}
	return published, nil
}

func (f *fakeCatalog) Recipe(context.Context, string) (chefdb.Recipe, error) {
	return chefdb.Recipe{}, catalog.ErrRecipeNotFound
}

func (f *fakeCatalog) SaveRecipe(context.Context, chefdb.Recipe) error { return nil }
func (f *fakeCatalog) DeleteRecipe(context.Context, string) error { return nil }
func (f *fakeCatalog) SaveSiteSettings(context.Context, map[string]any) error { return nil }

func (f *fakeCatalog) SiteSettings(context.Context) (chefdb.SiteSettings, error) {
	return catalog.DefaultSiteSettings(), nil
}

func listedIDs(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp struct {
		Recipes []Snippet `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	ids := make([]string, len(resp.Recipes))
	for i, s := range resp.Recipes {
		ids[i] = s.ID
	}
	return ids
}

func TestListRecipes(t *testing.T) {
	t.Parallel()

	store := &fakeCatalog{recipes: []chefdb.Recipe{
		{ID: "r1", Title: "Steak", Published: true, Videos: []chefdb.RecipeVideo{{ID: "v1"}}},
		{ID: "draft", Title: "Unfinished"},
		{ID: "r2", Title: "Pasta", Published: true},
	}}
	h := NewHandler(store)

	tests := []struct {
		name      string
		principal *auth.Principal
		wantIDs   []string
	}{
		{name: "anonymous sees published", principal: nil, wantIDs: []string{"r1", "r2"}},
		{
			name:      "member sees published",
			principal: &auth.Principal{UserID: "u1", Email: "a@gmail.com"},
			wantIDs:   []string{"r1", "r2"},
		},
		{
			name:      "admin sees drafts",
			principal: &auth.Principal{UserID: "u9", Email: "chef@gmail.com", Admin: true},
			wantIDs:   []string{"r1", "draft", "r2"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
			if tc.principal != nil {
				req = req.WithContext(auth.NewContext(req.Context(), *tc.principal))
			}
			rec := httptest.NewRecorder()
			h.ListRecipes(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.wantIDs, listedIDs(t, rec))
		})
	}
}

func TestListRecipesNoPaidContent(t *testing.T) {
	t.Parallel()

	store := &fakeCatalog{recipes: []chefdb.Recipe{
		{ID: "r1", Title: "Steak", Published: true, Videos: []chefdb.RecipeVideo{{ID: "v1", VimeoID: "123"}}},
	}}
	h := NewHandler(store)

	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	rec := httptest.NewRecorder()
	h.ListRecipes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "vimeoId")
	assert.Contains(t, rec.Body.String(), `"videoCount":1`)
}
