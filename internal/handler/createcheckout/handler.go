// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package createcheckout

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v82"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/httpjson"
	"github.com/chefrecipes/server/internal/payment"
)

// Request is the body of a checkout session creation request. The payer
// identity always comes from the authenticated principal, never from the
// body.
type Request struct {
	RecipeID          string `json:"recipeId"`
	RecipeTitle       string `json:"recipeTitle"`
	RecipeDescription string `json:"recipeDescription"`
	Price             int64  `json:"price"`
	Gift              bool   `json:"isGift"`
	RecipientEmail    string `json:"recipientEmail"`
	SelfGift          bool   `json:"isSelfGift"`
}

func NewHandler(sessions payment.CheckoutSessions, baseURL string) *Handler {
	return &Handler{
		sessions: sessions,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}
}

type Handler struct {
	sessions payment.CheckoutSessions
	baseURL  string
}

// CreateCheckout opens a hosted checkout session for a recipe purchase
// and returns its redirect URL. No local state is written; the purchase
// is only recorded when the provider confirms payment over the webhook.
func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "sign in required")
		return
	}

	var req Request
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.RecipeID == "" || req.Price <= 0 {
		httpjson.Error(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if req.Gift && req.RecipientEmail == "" {
		httpjson.Error(w, http.StatusBadRequest, "missing recipient email")
		return
	}

	// Gift flows return to the landing page; direct purchases return to
	// the recipe that was bought.
	var successURL, cancelURL string
	if req.Gift {
		successURL = h.baseURL + "/?gift=success"
		cancelURL = h.baseURL + "/?gift=canceled"
	} else {
		successURL = h.baseURL + "/recipes/" + req.RecipeID + "?success=true"
		cancelURL = h.baseURL + "/recipes/" + req.RecipeID + "?canceled=true"
	}

	name := req.RecipeTitle
	if name == "" {
		name = "Recipe"
	}
	description := req.RecipeDescription
	if req.Gift {
		name = "🎁 " + name
		description = "A gift for " + req.RecipientEmail
	}

	productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripe.String(name),
	}
	if description != "" {
		productData.Description = stripe.String(description)
	}

	recipientEmail := req.RecipientEmail
	if !req.Gift {
		recipientEmail = p.Email
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CustomerEmail:      stripe.String(p.Email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripe.String(string(stripe.CurrencyUSD)),
					ProductData: productData,
					UnitAmount:  stripe.Int64(req.Price),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(successURL),
		CancelURL:  stripe.String(cancelURL),
	}
	params.Context = ctx

	// The metadata bag is the only information available to the webhook
	// when the provider confirms payment.
	params.AddMetadata("recipeId", req.RecipeID)
	params.AddMetadata("purchasedByUserId", p.UserID)
	params.AddMetadata("purchasedByEmail", p.Email)
	params.AddMetadata("isGift", strconv.FormatBool(req.Gift))
	params.AddMetadata("recipientEmail", recipientEmail)
	params.AddMetadata("isSelfGift", strconv.FormatBool(req.SelfGift))

	sess, err := h.sessions.New(params)
	if err != nil {
		slog.ErrorContext(ctx, "createcheckout: creating checkout session", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to create checkout session")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"url": sess.URL})
}
