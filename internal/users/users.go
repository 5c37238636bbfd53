// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package users

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/chefdb"
)

const usersCollection = "users"

// Store records user sign-ins.
type Store interface {
	// RecordSignIn upserts the user's profile document with the current
	// sign-in time.
	RecordSignIn(ctx context.Context, p auth.Principal) error
}

// NewFirestoreStore returns a Store backed by Firestore.
func NewFirestoreStore(client *firestore.Client) Store {
	return &firestoreStore{client: client}
}

type firestoreStore struct {
	client *firestore.Client
}

func (s *firestoreStore) RecordSignIn(ctx context.Context, p auth.Principal) error {
	user := chefdb.User{
		Email:       p.Email,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		LastLogin:   time.Now(),
	}
	if _, err := s.client.Collection(usersCollection).Doc(p.UserID).Set(ctx, user); err != nil {
		return fmt.Errorf("users: recording sign-in: %w", err)
	}
	return nil
}
