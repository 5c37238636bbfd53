// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package stripewebhook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/chefdb"
	"github.com/chefrecipes/server/internal/entitlement"
	"github.com/chefrecipes/server/internal/httpjson"
)

func NewHandler(webhookSecret string, resolver auth.UserResolver, purchases entitlement.Store) *Handler {
	return &Handler{
		webhookSecret: webhookSecret,
		resolver:      resolver,
		purchases:     purchases,
	}
}

type Handler struct {
	webhookSecret string
	resolver      auth.UserResolver
	purchases     entitlement.Store
}

// HandleWebhook processes payment provider notifications. Completed
// checkout sessions are recorded as purchases exactly once; every other
// verified event is acknowledged without side effects. The response is
// an error status only when signature verification fails or the purchase
// write fails, so the provider retries deliveries that mattered and were
// not durably recorded.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "failed to read body")
		return
	}

	signature := r.Header.Get("Stripe-Signature")
	if signature == "" {
		httpjson.Error(w, http.StatusBadRequest, "missing signature")
		return
	}

	// Stripe delivers events at the account's default API version, which
	// rarely matches the SDK's pinned one. The fields read below are
	// stable across versions.
	event, err := webhook.ConstructEventWithOptions(body, signature, h.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		slog.WarnContext(ctx, "stripewebhook: rejecting event with invalid signature", "error", err)
		httpjson.Error(w, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	if event.Type != "checkout.session.completed" {
		httpjson.Write(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		slog.ErrorContext(ctx, "stripewebhook: unmarshalling checkout session", "error", err)
		httpjson.Error(w, http.StatusBadRequest, "malformed event payload")
		return
	}

	recipeID := session.Metadata["recipeId"]
	recipientEmail := strings.ToLower(session.Metadata["recipientEmail"])
	if recipeID == "" || recipientEmail == "" {
		// Sessions without our metadata are not purchase sessions, e.g.
		// ones created before the metadata bag existed. Acknowledge so
		// the provider does not redeliver them forever.
		slog.WarnContext(ctx, "stripewebhook: ignoring session without purchase metadata",
			"sessionID", session.ID)
		httpjson.Write(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	// The recipient may not have an account yet; the purchase is still
	// recorded and matched by email until they sign in.
	recipientUserID := ""
	if userID, found, err := h.resolver.ResolveUserByEmail(ctx, recipientEmail); err != nil {
		slog.ErrorContext(ctx, "stripewebhook: resolving recipient", "error", err)
	} else if found {
		recipientUserID = userID
	}

	purchase := chefdb.Purchase{
		RecipientEmail:    recipientEmail,
		RecipientUserID:   recipientUserID,
		RecipeID:          recipeID,
		PurchasedByUserID: session.Metadata["purchasedByUserId"],
		PurchasedByEmail:  session.Metadata["purchasedByEmail"],
		Gift:              session.Metadata["isGift"] == "true",
		SelfGift:          session.Metadata["isSelfGift"] == "true",
		StripeSessionID:   session.ID,
		Amount:            session.AmountTotal,
		Currency:          string(session.Currency),
		CreatedAt:         time.Now(),
	}

	if err := h.purchases.RecordPurchase(ctx, purchase); err != nil {
		if errors.Is(err, entitlement.ErrAlreadyRecorded) {
			// At-least-once delivery, the first write won.
			httpjson.Write(w, http.StatusOK, map[string]bool{"received": true})
			return
		}
		slog.ErrorContext(ctx, "stripewebhook: recording purchase", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to record purchase")
		return
	}

	slog.InfoContext(ctx, "stripewebhook: purchase recorded",
		"recipeID", recipeID, "recipientEmail", recipientEmail, "sessionID", session.ID)
	httpjson.Write(w, http.StatusOK, map[string]bool{"received": true})
}
