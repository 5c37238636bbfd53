package getprofile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefrecipes/server/internal/auth"
	"github.com/chefrecipes/server/internal/chefdb"
	"github.com/chefrecipes/server/internal/entitlement"
)

type fakeUsers struct {
	recorded []auth.Principal
}

func (f *fakeUsers) RecordSignIn(_ context.Context, p auth.Principal) error {
	f.recorded = append(f.recorded, p)
	return nil
}

type fakePurchases struct {
	purchases []chefdb.Purchase
}

func (f *fakePurchases) RecordPurchase(_ context.Context, p chefdb.Purchase) error {
	f.purchases = append(f.purchases, p)
	return nil
}

func (f *fakePurchases) PurchasesFor(_ context.Context, email string, userID string) ([]chefdb.Purchase, error) {
	var matched []chefdb.Purchase
	for _, p := range f.purchases {
		if p.RecipientEmail == strings.ToLower(email) || (userID != "" && p.RecipientUserID == userID) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakePurchases) ClaimPurchases(_ context.Context, email string, userID string) (int, error) {
	claimed := 0
	for i, p := range f.purchases {
		if p.RecipientEmail == strings.ToLower(email) && p.RecipientUserID == "" {
			f.purchases[i].RecipientUserID = userID
			claimed++
		}
	}
	return claimed, nil
}

func doRequest(h *Handler, principal *auth.Principal) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	if principal != nil {
		req = req.WithContext(auth.NewContext(req.Context(), *principal))
	}
	rec := httptest.NewRecorder()
	h.GetProfile(rec, req)
	return rec
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	userStore := &fakeUsers{}
	purchases := &fakePurchases{purchases: []chefdb.Purchase{
		{RecipientEmail: "a@gmail.com", RecipeID: "r1", StripeSessionID: "sess_1"},
	}}
	h := NewHandler(userStore, purchases, entitlement.NewChecker(purchases, nil))

	p := auth.Principal{UserID: "u1", Email: "a@gmail.com", DisplayName: "Alice", PhotoURL: "https://p.example/a.png"}
	rec := doRequest(h, &p)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.UserID)
	assert.Equal(t, "a@gmail.com", resp.Email)
	assert.Equal(t, "Alice", resp.DisplayName)
	assert.False(t, resp.Admin)
	assert.Equal(t, []string{"r1"}, resp.OwnedIDs)

	require.Len(t, userStore.recorded, 1)
	assert.Equal(t, p, userStore.recorded[0])
}

func TestGetProfileClaimsGiftedPurchases(t *testing.T) {
	t.Parallel()

	purchases := &fakePurchases{purchases: []chefdb.Purchase{
		// A gift recorded before the recipient had an account.
		{RecipientEmail: "a@gmail.com", RecipeID: "r1", StripeSessionID: "sess_1", Gift: true},
	}}
	h := NewHandler(&fakeUsers{}, purchases, entitlement.NewChecker(purchases, nil))

	rec := doRequest(h, &auth.Principal{UserID: "u1", Email: "A@Gmail.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "u1", purchases.purchases[0].RecipientUserID)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"r1"}, resp.OwnedIDs)
}

func TestGetProfileNoPrincipal(t *testing.T) {
	t.Parallel()

	purchases := &fakePurchases{}
	h := NewHandler(&fakeUsers{}, purchases, entitlement.NewChecker(purchases, nil))

	rec := doRequest(h, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
