// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package catalog provides the durable store of recipes and site
// settings. The backing store is selected once at startup: Firestore when
// a Google project is configured, otherwise a read-only demo catalog.
package catalog

import (
	"context"
	"errors"

	"github.com/chefrecipes/server/internal/chefdb"
)

// ErrRecipeNotFound is returned when no recipe exists with the given ID.
var ErrRecipeNotFound = errors.New("catalog: recipe not found")

// ErrNotConfigured is returned for writes when no backing store is
// configured and the demo catalog is being served.
var ErrNotConfigured = errors.New("catalog: backing store not configured")

// Store is the catalog of recipes and the site settings singleton.
type Store interface {
	// Recipes returns all recipes ordered by their manual sort order.
	Recipes(ctx context.Context) ([]chefdb.Recipe, error)

	// PublishedRecipes returns published recipes ordered by their manual
	// sort order.
	PublishedRecipes(ctx context.Context) ([]chefdb.Recipe, error)

	// Recipe returns the recipe with the given ID, or ErrRecipeNotFound.
	Recipe(ctx context.Context, id string) (chefdb.Recipe, error)

	// SaveRecipe creates or replaces the recipe.
	SaveRecipe(ctx context.Context, recipe chefdb.Recipe) error

	// DeleteRecipe deletes the recipe with the given ID. Deleting an
	// unknown ID is not an error. Purchases are not cascaded.
	DeleteRecipe(ctx context.Context, id string) error

	// SiteSettings returns the settings singleton merged over defaults.
	SiteSettings(ctx context.Context) (chefdb.SiteSettings, error)

	// SaveSiteSettings merges the given fields into the settings
	// singleton, creating it if absent.
	SaveSiteSettings(ctx context.Context, fields map[string]any) error
}
