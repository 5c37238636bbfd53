// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package deleterecipe

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chefrecipes/server/internal/catalog"
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

// DeleteRecipe deletes a recipe immediately. Existing purchases of the
// recipe are kept. Admin only.
func (h *Handler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	recipeID := chi.URLParam(r, "recipeID")

	if err := h.store.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, catalog.ErrNotConfigured) {
			httpjson.Error(w, http.StatusServiceUnavailable, "no backing store configured, demo content is read-only")
			return
		}
		slog.ErrorContext(ctx, "deleterecipe: deleting recipe", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete recipe")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]bool{"deleted": true})
}
