// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package saverecipe

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

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

// SaveRecipe creates or updates a recipe. New recipes get a generated
// ID. Admin only.
func (h *Handler) SaveRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var recipe chefdb.Recipe
	if err := httpjson.Decode(r, &recipe); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if recipe.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "missing title")
		return
	}
	if recipe.Price < 0 {
		httpjson.Error(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	now := time.Now()
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
		recipe.CreatedAt = now
	} else if existing, err := h.store.Recipe(ctx, recipe.ID); err == nil {
		recipe.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, catalog.ErrRecipeNotFound) {
		slog.ErrorContext(ctx, "saverecipe: getting existing recipe", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to save recipe")
		return
	} else {
		recipe.CreatedAt = now
	}
	recipe.UpdatedAt = now

	if err := h.store.SaveRecipe(ctx, recipe); err != nil {
		if errors.Is(err, catalog.ErrNotConfigured) {
			httpjson.Error(w, http.StatusServiceUnavailable, "no backing store configured, demo content is read-only")
			return
		}
		slog.ErrorContext(ctx, "saverecipe: saving recipe", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to save recipe")
		return
	}

	httpjson.Write(w, http.StatusOK, recipe)
}
