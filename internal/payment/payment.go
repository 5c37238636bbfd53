// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package payment wraps the Stripe SDK behind a small interface so
// handlers can be tested against a fake provider.
package payment

import (
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

// CheckoutSessions opens hosted checkout sessions with the payment
// provider.
type CheckoutSessions interface {
	// New opens a checkout session and returns it, including the hosted
	// redirect URL.
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// NewCheckoutSessions returns a CheckoutSessions backed by the Stripe
// API with the given secret key.
func NewCheckoutSessions(secretKey string) CheckoutSessions {
	return &session.Client{
		B:   stripe.GetBackend(stripe.APIBackend),
		Key: secretKey,
	}
}
