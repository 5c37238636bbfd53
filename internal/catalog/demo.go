// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package catalog

import (
	"context"

	"github.com/chefrecipes/server/internal/chefdb"
)

// NewDemoStore returns a read-only Store serving built-in example
// content. It is used when no backing store is configured so the
// storefront can be explored without any setup.
func NewDemoStore() Store {
	return &demoStore{}
}

type demoStore struct{}

func (s *demoStore) Recipes(_ context.Context) ([]chefdb.Recipe, error) {
	recipes := make([]chefdb.Recipe, len(demoRecipes))
	copy(recipes, demoRecipes)
	return recipes, nil
}

func (s *demoStore) PublishedRecipes(ctx context.Context) ([]chefdb.Recipe, error) {
	return s.Recipes(ctx)
}

func (s *demoStore) Recipe(_ context.Context, id string) (chefdb.Recipe, error) {
	for _, r := range demoRecipes {
		if r.ID == id {
			return r, nil
		}
	}
	return chefdb.Recipe{}, ErrRecipeNotFound
}

func (s *demoStore) SaveRecipe(context.Context, chefdb.Recipe) error {
	return ErrNotConfigured
}

func (s *demoStore) DeleteRecipe(context.Context, string) error {
	return ErrNotConfigured
}

func (s *demoStore) SiteSettings(_ context.Context) (chefdb.SiteSettings, error) {
	return DefaultSiteSettings(), nil
}

func (s *demoStore) SaveSiteSettings(context.Context, map[string]any) error {
	return ErrNotConfigured
}

// DefaultSiteSettings returns the settings served before an admin has
// saved any, and the base that stored settings are merged over.
func DefaultSiteSettings() chefdb.SiteSettings {
	return chefdb.SiteSettings{
		HeroTitle:    "Cook like a professional",
		HeroSubtitle: "ChefRecipes",
		HeroDescription: "Exclusive video recipes and master classes from a professional chef. " +
			"Step-by-step instructions, technique secrets and signature sauces to bring " +
			"your dishes to restaurant level.",
		FooterText: "© 2024 ChefRecipes. All rights reserved.",
		Features: []chefdb.SiteFeature{
			{Title: "HD Video", Description: "High quality video lessons with close-up shots", Emoji: "🎬"},
			{Title: "Detailed recipes", Description: "Full ingredient lists and step-by-step instructions", Emoji: "📝"},
			{Title: "Lifetime access", Description: "Buy once, rewatch as many times as you like", Emoji: "♾️"},
		},
		FAQ: []chefdb.FAQEntry{
			{
				Question: "How do I watch a course after buying it?",
				Answer:   "Sign in with the same email you used at checkout and the course unlocks automatically.",
			},
			{
				Question: "Can I gift a course to someone else?",
				Answer:   "Yes, choose the gift option at checkout and enter the recipient's email.",
			},
		},
		Categories:     []string{"Meat", "Pasta", "Desserts", "Baking", "Soups", "Salads", "Seafood"},
		RecipesPerPage: 12,
	}
}

var demoRecipes = []chefdb.Recipe{
	{
		ID:    "perfect-steak",
		Title: "Perfect Ribeye Steak",
		Description: `A complete master class on cooking the perfect steak.

In this course you will learn:
- How to choose the right cut
- Secrets of preparing the steak
- Pan-searing technique
- Resting and serving
- 3 signature sauces`,
		ShortDescription: "Learn to cook a perfect ribeye like the best steakhouses.",
		Price:            999, // $9.99
		Videos: []chefdb.RecipeVideo{
			{ID: "steak-1", Title: "Part 1: Choosing and preparing the meat", VimeoID: "76979871", Description: "How to pick the perfect cut"},
			{ID: "steak-2", Title: "Part 2: Searing technique", VimeoID: "76979871", Description: "A perfect crust and doneness control"},
			{ID: "steak-3", Title: "Part 3: Resting and serving", VimeoID: "76979871", Description: "Why resting the meat matters"},
		},
		Ingredients: []string{"Ribeye steak 400g", "Butter", "Garlic", "Thyme", "Rosemary"},
		CookingTime: "30 minutes",
		Difficulty:  chefdb.DifficultyMedium,
		Category:    "Meat",
		Order:       1,
		Published:   true,
	},
	{
		ID:               "homemade-pasta",
		Title:            "Homemade Pasta from Scratch",
		Description:      "Learn to make real Italian pasta with your own hands.",
		ShortDescription: "Real Italian pasta made by hand. Tagliatelle, ravioli and gnocchi.",
		Price:            1499, // $14.99
		Videos: []chefdb.RecipeVideo{
			{ID: "pasta-1", Title: "Basic pasta dough", VimeoID: "76979871", Description: "The perfect proportions"},
			{ID: "pasta-2", Title: "Tagliatelle", VimeoID: "76979871", Description: "The classic ribbon pasta"},
		},
		Ingredients: []string{"00 flour", "Eggs", "Olive oil", "Salt"},
		CookingTime: "2 hours",
		Difficulty:  chefdb.DifficultyHard,
		Category:    "Pasta",
		Order:       2,
		Published:   true,
	},
	{
		ID:               "french-desserts",
		Title:            "French Desserts",
		Description:      "Three iconic French desserts to make at home.",
		ShortDescription: "Crème brûlée, fondant and tarte tatin, three jewels of French cuisine.",
		Price:            799, // $7.99
		Videos: []chefdb.RecipeVideo{
			{ID: "dessert-1", Title: "Crème brûlée", VimeoID: "76979871", Description: "Silky custard and crackly caramel"},
			{ID: "dessert-2", Title: "Chocolate fondant", VimeoID: "76979871", Description: "The molten center"},
		},
		Ingredients: []string{"Cream", "Sugar", "Eggs", "Vanilla", "Chocolate"},
		CookingTime: "1.5 hours",
		Difficulty:  chefdb.DifficultyMedium,
		Category:    "Desserts",
		Order:       3,
		Published:   true,
	},
}
