// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package entitlement records and answers who owns which recipe.
// Purchases are keyed by the checkout session that paid for them so a
// session can never grant more than one entitlement, and recipients are
// matched by lower-cased email so a gift can be claimed by an account
// created after the purchase.
package entitlement

import (
	"context"
	"errors"
	"strings"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/chefdb"
)

// ErrAlreadyRecorded is returned when a purchase for the same checkout
// session has already been recorded. Callers treat it as a successful
// no-op since webhook deliveries are at-least-once.
var ErrAlreadyRecorded = errors.New("entitlement: purchase already recorded for session")

// Store is the append-only store of purchase records.
type Store interface {
	// RecordPurchase records the purchase, keyed by its checkout session
	// ID. Returns ErrAlreadyRecorded if a purchase for the session
	// already exists.
	RecordPurchase(ctx context.Context, p chefdb.Purchase) error

	// PurchasesFor returns purchases whose recipient matches the email
	// (case-insensitively) or the user ID.
	PurchasesFor(ctx context.Context, email string, userID string) ([]chefdb.Purchase, error)

	// ClaimPurchases back-fills the recipient user ID on purchases
	// matching the email that were recorded before the recipient had an
	// account. Returns the number of purchases claimed.
	ClaimPurchases(ctx context.Context, email string, userID string) (int, error)
}

// NewChecker returns a Checker answering access queries against the
// store. Admins on the allow-list have blanket access.
func NewChecker(store Store, adminAllowList []string) *Checker {
	return &Checker{
		store:       store,
		adminEmails: adminAllowList,
	}
}

// Checker answers whether a principal is entitled to a recipe.
type Checker struct {
	store       Store
	adminEmails []string
}

// HasAccess reports whether the principal owns the recipe. Admins always
// have access.
func (c *Checker) HasAccess(ctx context.Context, p auth.Principal, recipeID string) (bool, error) {
	if auth.IsAdmin(p.Email, c.adminEmails) {
		return true, nil
	}
	purchases, err := c.store.PurchasesFor(ctx, strings.ToLower(p.Email), p.UserID)
	if err != nil {
		return false, err
	}
	for _, purchase := range purchases {
		if purchase.RecipeID == recipeID {
			return true, nil
		}
	}
	return false, nil
}

// OwnedRecipeIDs returns the IDs of recipes the principal has purchased,
// deduplicated, in purchase order.
func (c *Checker) OwnedRecipeIDs(ctx context.Context, p auth.Principal) ([]string, error) {
	purchases, err := c.store.PurchasesFor(ctx, strings.ToLower(p.Email), p.UserID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(purchases))
	ids := make([]string, 0, len(purchases))
	for _, purchase := range purchases {
		if _, ok := seen[purchase.RecipeID]; ok {
			continue
		}
		seen[purchase.RecipeID] = struct{}{}
		ids = append(ids, purchase.RecipeID)
	}
	return ids, nil
}
