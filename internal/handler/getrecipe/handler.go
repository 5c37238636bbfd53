// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getrecipe

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/catalog"
	"github.com/chefrecipes/server/internal/chefdb"
	"github.com/chefrecipes/server/internal/entitlement"
	"github.com/chefrecipes/server/internal/httpjson"
)

func NewHandler(store catalog.Store, checker *entitlement.Checker) *Handler {
	return &Handler{
		store:   store,
		checker: checker,
	}
}

type Handler struct {
	store   catalog.Store
	checker *entitlement.Checker
}

// Response is a recipe with an ownership flag. Videos are stripped
// unless the caller owns the recipe; entitlement is enforced here, on
// the server, not by the client hiding the player.
type Response struct {
	Recipe    chefdb.Recipe `json:"recipe"`
	HasAccess bool          `json:"hasAccess"`
}

// GetRecipe returns a single recipe. Unpublished recipes are only
// visible to admins, and paid videos only to owners.
func (h *Handler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	recipeID := chi.URLParam(r, "recipeID")

	recipe, err := h.store.Recipe(ctx, recipeID)
	if err != nil {
		if errors.Is(err, catalog.ErrRecipeNotFound) {
			httpjson.Error(w, http.StatusNotFound, "recipe not found")
			return
		}
		slog.ErrorContext(ctx, "getrecipe: getting recipe", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to get recipe")
		return
	}

	p, signedIn := auth.PrincipalFromContext(ctx)

	if !recipe.Published && !p.Admin {
		httpjson.Error(w, http.StatusNotFound, "recipe not found")
		return
	}

	hasAccess := false
	if signedIn {
		hasAccess, err = h.checker.HasAccess(ctx, p, recipe.ID)
		if err != nil {
			slog.ErrorContext(ctx, "getrecipe: checking access", "error", err)
			httpjson.Error(w, http.StatusInternalServerError, "failed to check access")
			return
		}
	}
	if !hasAccess {
		recipe.Videos = nil
	}

	httpjson.Write(w, http.StatusOK, Response{Recipe: recipe, HasAccess: hasAccess})
}
