// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package chefdb

import (
	"time"
)

type Difficulty string

const (
	// DifficultyEasy is a recipe anyone can follow.
	DifficultyEasy Difficulty = "easy"
	// DifficultyMedium is a recipe that needs some technique.
	DifficultyMedium Difficulty = "medium"
	// DifficultyHard is a recipe for experienced cooks.
	DifficultyHard Difficulty = "hard"
)

// RecipeVideo is a single lesson video within a recipe course.
type RecipeVideo struct {
	// ID is the unique identifier of the video within the recipe.
	ID string `firestore:"id" json:"id"`

	// Title is the title of the video.
	Title string `firestore:"title" json:"title"`

	// VimeoID is the ID of the video on the external video host.
	VimeoID string `firestore:"vimeoId" json:"vimeoId"`

	// Description is an optional description of the video.
	Description string `firestore:"description" json:"description,omitempty"`
}

// Recipe represents a purchasable recipe course stored in Firestore.
type Recipe struct {
	// ID is the unique identifier of the recipe.
	ID string `firestore:"id" json:"id"`

	// Title is the title of the recipe.
	Title string `firestore:"title" json:"title"`

	// Description is the long description of the recipe.
	Description string `firestore:"description" json:"description"`

	// ShortDescription is the description shown on listing cards.
	ShortDescription string `firestore:"shortDescription" json:"shortDescription"`

	// Price is the price of the recipe in minor currency units, e.g. cents.
	Price int64 `firestore:"price" json:"price"`

	// CoverImage is the URL of the cover image of the recipe.
	CoverImage string `firestore:"coverImage" json:"coverImage"`

	// YoutubePromoURL is the URL of a free promotional video.
	YoutubePromoURL string `firestore:"youtubePromoUrl" json:"youtubePromoUrl,omitempty"`

	// Videos are the paid lesson videos of the recipe, in course order.
	Videos []RecipeVideo `firestore:"videos" json:"videos,omitempty"`

	// Ingredients are the ingredients of the recipe as free-form text.
	Ingredients []string `firestore:"ingredients" json:"ingredients"`

	// CookingTime is the cooking time of the recipe as free-form text.
	CookingTime string `firestore:"cookingTime" json:"cookingTime"`

	// Difficulty is the difficulty of the recipe.
	Difficulty Difficulty `firestore:"difficulty" json:"difficulty"`

	// Category is the category of the recipe, one of the site categories.
	Category string `firestore:"category" json:"category"`

	// Order is the manual sort order of the recipe in listings.
	Order int `firestore:"order" json:"order"`

	// Published indicates the recipe is visible to non-admin users.
	Published bool `firestore:"isPublished" json:"isPublished"`

	// CreatedAt is the time the recipe was created.
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`

	// UpdatedAt is the time the recipe was last updated.
	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt"`
}
