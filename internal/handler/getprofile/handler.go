// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package getprofile

import (
	"log/slog"
	"net/http"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/entitlement"
	"github.com/chefrecipes/server/internal/httpjson"
	"github.com/chefrecipes/server/internal/users"
)

func NewHandler(users users.Store, purchases entitlement.Store, checker *entitlement.Checker) *Handler {
	return &Handler{
		users:     users,
		purchases: purchases,
		checker:   checker,
	}
}

type Handler struct {
	users     users.Store
	purchases entitlement.Store
	checker   *entitlement.Checker
}

// Response is the signed-in user's profile and entitlement summary,
// loaded once per session by the member area.
type Response struct {
	UserID      string   `json:"userId"`
	Email       string   `json:"email"`
	DisplayName string   `json:"displayName"`
	PhotoURL    string   `json:"photoUrl"`
	Admin       bool     `json:"isAdmin"`
	OwnedIDs    []string `json:"ownedRecipeIds"`
}

// GetProfile returns the principal and the recipe IDs it owns. As side
// effects it upserts the user's profile document and links purchases
// that were gifted to this email before the account existed.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "sign in required")
		return
	}

	if err := h.users.RecordSignIn(ctx, p); err != nil {
		// Non-fatal, the profile document is informational.
		slog.WarnContext(ctx, "getprofile: recording sign-in", "error", err)
	}

	if claimed, err := h.purchases.ClaimPurchases(ctx, p.Email, p.UserID); err != nil {
		slog.WarnContext(ctx, "getprofile: claiming purchases", "error", err)
	} else if claimed > 0 {
		slog.InfoContext(ctx, "getprofile: linked gifted purchases",
			"count", claimed, "userID", p.UserID)
	}

	owned, err := h.checker.OwnedRecipeIDs(ctx, p)
	if err != nil {
		slog.ErrorContext(ctx, "getprofile: getting owned recipes", "error", err)
		httpjson.Error(w, http.StatusInternalServerError, "failed to load purchases")
		return
	}

	httpjson.Write(w, http.StatusOK, Response{
		UserID:      p.UserID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		Admin:       p.Admin,
		OwnedIDs:    owned,
	})
}
