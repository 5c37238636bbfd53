// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package chefdb

// SiteFeature is a selling point shown on the landing page.
type SiteFeature struct {
	// Title is the title of the feature.
	Title string `firestore:"title" json:"title"`

	// Description is the description of the feature.
	Description string `firestore:"description" json:"description"`

	// Emoji is the emoji displayed next to the feature.
	Emoji string `firestore:"emoji" json:"emoji"`
}

// FAQEntry is a question and answer shown on the FAQ section.
type FAQEntry struct {
	// Question is the question text.
	Question string `firestore:"question" json:"question"`

	// Answer is the answer text.
	Answer string `firestore:"answer" json:"answer"`
}

// SiteSettings is the singleton document with landing page content and
// site-wide configuration. Missing fields are filled from defaults when
// read and saves merge over the stored document.
type SiteSettings struct {
	// HeroTitle is the main heading of the landing page.
	HeroTitle string `firestore:"heroTitle" json:"heroTitle"`

	// HeroSubtitle is the brand line shown above the heading.
	HeroSubtitle string `firestore:"heroSubtitle" json:"heroSubtitle"`

	// HeroDescription is the paragraph below the heading.
	HeroDescription string `firestore:"heroDescription" json:"heroDescription"`

	// HeroYoutubeURL is an optional promotional video for the hero block.
	HeroYoutubeURL string `firestore:"heroYoutubeUrl" json:"heroYoutubeUrl,omitempty"`

	// FooterText is the copyright line of the footer.
	FooterText string `firestore:"footerText" json:"footerText"`

	// Features are the selling points shown on the landing page.
	Features []SiteFeature `firestore:"features" json:"features"`

	// FAQ are the frequently asked questions shown on the landing page.
	FAQ []FAQEntry `firestore:"faq" json:"faq"`

	// Categories are the recipe categories available for filtering and
	// for admins when editing recipes.
	Categories []string `firestore:"categories" json:"categories"`

	// RecipesPerPage is the page size of recipe listings.
	RecipesPerPage int `firestore:"recipesPerPage" json:"recipesPerPage"`
}
