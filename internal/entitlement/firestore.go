// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package entitlement

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chefrecipes/server/internal/chefdb"
)

const purchasesCollection = "purchases"

// NewFirestoreStore returns a Store backed by Firestore. The purchase
// document ID is the checkout session ID, which makes the
// insert-if-absent write a single Create call.
func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

type firestoreStore struct {
	client *firestore.Client
}

func (s *firestoreStore) RecordPurchase(ctx context.Context, p chefdb.Purchase) error {
	p.RecipientEmail = strings.ToLower(p.RecipientEmail)

	doc := s.client.Collection(purchasesCollection).Doc(p.StripeSessionID)
	if _, err := doc.Create(ctx, p); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return ErrAlreadyRecorded
		}
		return fmt.Errorf("entitlement: recording purchase: %w", err)
	}
	return nil
}

func (s *firestoreStore) PurchasesFor(ctx context.Context, email string, userID string) ([]chefdb.Purchase, error) {
	var purchases []chefdb.Purchase
	seen := make(map[string]struct{})

	queries := []firestore.Query{
		s.client.Collection(purchasesCollection).
			Where("recipientEmail", "==", strings.ToLower(email)),
	}
	if userID != "" {
		queries = append(queries,
			s.client.Collection(purchasesCollection).
				Where("recipientUserId", "==", userID))
	}

	for _, q := range queries {
		iter := q.Documents(ctx)
		for {
			doc, err := iter.Next()
			if err != nil {
				if errors.Is(err, iterator.Done) {
					break
				}
				return nil, fmt.Errorf("entitlement: getting purchases: %w", err)
			}
			if _, ok := seen[doc.Ref.ID]; ok {
				continue
			}
			seen[doc.Ref.ID] = struct{}{}

			var p chefdb.Purchase
			if err := doc.DataTo(&p); err != nil {
				return nil, fmt.Errorf("entitlement: unmarshalling purchase: %w", err)
			}
			purchases = append(purchases, p)
		}
	}
	return purchases, nil
}

func (s *firestoreStore) ClaimPurchases(ctx context.Context, email string, userID string) (int, error) {
	docs, err := s.client.Collection(purchasesCollection).
		Where("recipientEmail", "==", strings.ToLower(email)).
		Where("recipientUserId", "==", "").
		Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("entitlement: finding unclaimed purchases: %w", err)
	}

	claimed := 0
	for _, doc := range docs {
		if _, err := doc.Ref.Update(ctx, []firestore.Update{
			{Path: "recipientUserId", Value: userID},
		}); err != nil {
			return claimed, fmt.Errorf("entitlement: claiming purchase: %w", err)
		}
		claimed++
	}
	return claimed, nil
}
