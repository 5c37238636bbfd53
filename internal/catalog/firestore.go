// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package catalog

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chefrecipes/server/internal/chefdb"
)

const (
	recipesCollection  = "recipes"
	settingsCollection = "settings"
	settingsDoc        = "site"
)

// NewFirestoreStore returns a Store backed by Firestore.
func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

type firestoreStore struct {
	client *firestore.Client
}

func (s *firestoreStore) Recipes(ctx context.Context) ([]chefdb.Recipe, error) {
	docs, err := s.client.Collection(recipesCollection).
		OrderBy("order", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("catalog: getting recipes from firestore: %w", err)
	}

	recipes := make([]chefdb.Recipe, len(docs))
	for i, doc := range docs {
		if err := doc.DataTo(&recipes[i]); err != nil {
			return nil, fmt.Errorf("catalog: unmarshalling recipe: %w", err)
		}
		recipes[i].ID = doc.Ref.ID
	}
	return recipes, nil
}

func (s *firestoreStore) PublishedRecipes(ctx context.Context) ([]chefdb.Recipe, error) {
	recipes, err := s.Recipes(ctx)
	if err != nil {
		return nil, err
	}
	published := recipes[:0]
	for _, r := range recipes {
		if r.Published {
			published = append(published, r)
		}
	}
	return published, nil
}

func (s *firestoreStore) Recipe(ctx context.Context, id string) (chefdb.Recipe, error) {
	doc, err := s.client.Collection(recipesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return chefdb.Recipe{}, ErrRecipeNotFound
		}
		return chefdb.Recipe{}, fmt.Errorf("catalog: getting recipe from firestore: %w", err)
	}

	var recipe chefdb.Recipe
	if err := doc.DataTo(&recipe); err != nil {
		return chefdb.Recipe{}, fmt.Errorf("catalog: unmarshalling recipe: %w", err)
	}
	recipe.ID = doc.Ref.ID
	return recipe, nil
}

func (s *firestoreStore) SaveRecipe(ctx context.Context, recipe chefdb.Recipe) error {
	if _, err := s.client.Collection(recipesCollection).Doc(recipe.ID).Set(ctx, recipe); err != nil {
		return fmt.Errorf("catalog: saving recipe: %w", err)
	}
	return nil
}

func (s *firestoreStore) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.client.Collection(recipesCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("catalog: deleting recipe: %w", err)
	}
	return nil
}

func (s *firestoreStore) SiteSettings(ctx context.Context) (chefdb.SiteSettings, error) {
	settings := DefaultSiteSettings()

	doc, err := s.client.Collection(settingsCollection).Doc(settingsDoc).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return settings, nil
		}
		return chefdb.SiteSettings{}, fmt.Errorf("catalog: getting site settings: %w", err)
	}

	if err := doc.DataTo(&settings); err != nil {
		return chefdb.SiteSettings{}, fmt.Errorf("catalog: unmarshalling site settings: %w", err)
	}
	return settings, nil
}

func (s *firestoreStore) SaveSiteSettings(ctx context.Context, fields map[string]any) error {
	doc := s.client.Collection(settingsCollection).Doc(settingsDoc)
	if _, err := doc.Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("catalog: saving site settings: %w", err)
	}
	return nil
}
