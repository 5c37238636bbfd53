package listrecipes

import (
	"log/slog"
	"net/http"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/catalog"
	"github.com/chefrecipes/server/internal/chefdb"
	"github.com/chefrecipes/server/internal/httpjson"
)

func NewHandler(store catalog.Store) *Handler {
	return &Handler{
		store: store,
	}
}

type Handler struct {
	store catalog.Store
}

// Snippet is a recipe as shown on listing cards. Paid content is never
// included in listings.
type Snippet struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	ShortDescription string            `json:"shortDescription"`
	Price            int64             `json:"price"`
	CoverImage       string            `json:"coverImage"`
	CookingTime      string            `json:"cookingTime"`
	Difficulty       chefdb.Difficulty `json:"difficulty"`
	Category         string            `json:"category"`
	Order            int               `json:"order"`
	Published        bool              `json:"isPublished"`
	VideoCount       int               `json:"videoCount"`
}

// ListRecipes returns published recipes ordered by their manual sort
// order. Admins additionally see unpublished recipes.
func (h *Handler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, _ := auth.PrincipalFromContext(ctx)

	var recipes []chefdb.Recipe
	var err error
	if p.Admin {
		recipes, err = h.store.Recipes(ctx)
	} else {
		recipes, err = h.store.PublishedRecipes(ctx)
	}
	if err != nil {
		slog.ErrorContext(ctx, "listrecipes: getting recipes", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to list recipes")
		return
	}

	snippets := make([]Snippet, len(recipes))
	for i, recipe := range recipes {
		snippets[i] = Snippet{
			ID:               recipe.ID,
			Title:            recipe.Title,
			ShortDescription: recipe.ShortDescription,
			Price:            recipe.Price,
			CoverImage:       recipe.CoverImage,
			CookingTime:      recipe.CookingTime,
			Difficulty:       recipe.Difficulty,
			Category:         recipe.Category,
			Order:            recipe.Order,
			Published:        recipe.Published,
			VideoCount:       len(recipe.Videos),
		}
	}

	httpjson.Write(w, http.StatusOK, map[string]any{"recipes": snippets})
}
