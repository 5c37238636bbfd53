package auth

import (
	"context"
	"fmt"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// UserResolver looks up whether an account already exists for an email.
// An unknown email is a normal outcome, not an error: a gift recipient
// may sign up after the gift was purchased.
type UserResolver interface {
	ResolveUserByEmail(ctx context.Context, email string) (userID string, found bool, err error)
}

// NewFirebaseResolver returns a UserResolver backed by the Firebase Auth
// admin client.
func NewFirebaseResolver(client *fbauth.Client) UserResolver {
	return &firebaseResolver{client: client}
}

type firebaseResolver struct {
	client *fbauth.Client
}

func (r *firebaseResolver) ResolveUserByEmail(ctx context.Context, email string) (string, bool, error) {
	u, err := r.client.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if fbauth.IsUserNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("auth: looking up user by email: %w", err)
	}
	return u.UID, true, nil
}
