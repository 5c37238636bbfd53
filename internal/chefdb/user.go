// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package chefdb

import (
	"time"
)

// User is the profile document upserted on every sign-in. It is not
// consulted for entitlement decisions, which key on email.
type User struct {
	// Email is the email of the user.
	Email string `firestore:"email"`

	// DisplayName is the display name from the identity provider.
	DisplayName string `firestore:"displayName"`

	// PhotoURL is the avatar URL from the identity provider.
	PhotoURL string `firestore:"photoUrl"`

	// LastLogin is the time of the most recent sign-in.
	LastLogin time.Time `firestore:"lastLogin"`
}
