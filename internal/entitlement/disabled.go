// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package entitlement

import (
	"context"
	"errors"

	"github.com/chefrecipes/server/internal/chefdb"
)

// ErrNotConfigured is returned for writes when no backing store is
// configured.
var ErrNotConfigured = errors.New("entitlement: backing store not configured")

// NewDisabledStore returns a Store used when no backing store is
// configured: nobody owns anything and purchases cannot be recorded.
func NewDisabledStore() Store {
	return disabledStore{}
}

type disabledStore struct{}

func (disabledStore) RecordPurchase(context.Context, chefdb.Purchase) error {
	return ErrNotConfigured
}

func (disabledStore) PurchasesFor(context.Context, string, string) ([]chefdb.Purchase, error) {
	return nil, nil
}

func (disabledStore) ClaimPurchases(context.Context, string, string) (int, error) {
	return 0, nil
}
