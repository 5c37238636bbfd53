// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package chefdb

import (
	"time"
)

// Purchase records the entitlement of a recipient to a recipe. A purchase
// is written exactly once per completed checkout session and is never
// mutated afterwards, except for back-filling RecipientUserID when a gift
// recipient signs in for the first time.
type Purchase struct {
	// RecipientEmail is the lower-cased email of the entitled recipient.
	// It is the authoritative identity key: a gift may be recorded before
	// the recipient has ever signed in.
	RecipientEmail string `firestore:"recipientEmail"`

	// RecipientUserID is the user ID of the recipient if an account
	// existed at confirmation time, empty otherwise.
	RecipientUserID string `firestore:"recipientUserId"`

	// RecipeID is the ID of the purchased recipe.
	RecipeID string `firestore:"recipeId"`

	// PurchasedByUserID is the user ID of the payer.
	PurchasedByUserID string `firestore:"purchasedByUserId"`

	// PurchasedByEmail is the email of the payer.
	PurchasedByEmail string `firestore:"purchasedByEmail"`

	// Gift indicates the purchase was made for someone else.
	Gift bool `firestore:"isGift"`

	// SelfGift indicates a gift whose recipient is the payer themselves.
	SelfGift bool `firestore:"isSelfGift"`

	// StripeSessionID is the ID of the checkout session that paid for the
	// purchase. It doubles as the document ID so a session can only ever
	// produce one purchase.
	StripeSessionID string `firestore:"stripeSessionId"`

	// Amount is the amount paid in minor currency units.
	Amount int64 `firestore:"amount"`

	// Currency is the lower-cased ISO currency code of the payment.
	Currency string `firestore:"currency"`

	// CreatedAt is the time the purchase was recorded.
	CreatedAt time.Time `firestore:"createdAt"`
}
