package createcheckout

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"

	"github.com/chefrecipes/server/internal/auth"
)

type fakeSessions struct {
	lastParams *stripe.CheckoutSessionParams
	err        error
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.lastParams = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{
		ID:  "sess_test",
		URL: "https://checkout.stripe.test/c/pay/sess_test",
	}, nil
}

func doRequest(t *testing.T, h *Handler, principal *auth.Principal, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout/sessions", strings.NewReader(body))
	if principal != nil {
		req = req.WithContext(auth.NewContext(req.Context(), *principal))
	}
	rec := httptest.NewRecorder()
	h.CreateCheckout(rec, req)
	return rec
}

var buyer = auth.Principal{UserID: "u1", Email: "buyer@gmail.com", DisplayName: "Buyer"}

func TestCreateCheckout(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	h := NewHandler(sessions, "https://chefrecipes.example.com/")

	rec := doRequest(t, h, &buyer, `{"recipeId":"r1","recipeTitle":"Perfect Steak","recipeDescription":"A course","price":999}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.test/c/pay/sess_test", resp["url"])

	params := sessions.lastParams
	require.NotNil(t, params)
	assert.Equal(t, "https://chefrecipes.example.com/recipes/r1?success=true", *params.SuccessURL)
	assert.Equal(t, "https://chefrecipes.example.com/recipes/r1?canceled=true", *params.CancelURL)
	assert.Equal(t, "buyer@gmail.com", *params.CustomerEmail)

	require.Len(t, params.LineItems, 1)
	item := params.LineItems[0]
	assert.Equal(t, "Perfect Steak", *item.PriceData.ProductData.Name)
	assert.Equal(t, "A course", *item.PriceData.ProductData.Description)
	assert.Equal(t, int64(999), *item.PriceData.UnitAmount)
	assert.Equal(t, int64(1), *item.Quantity)

	assert.Equal(t, map[string]string{
		"recipeId":          "r1",
		"purchasedByUserId": "u1",
		"purchasedByEmail":  "buyer@gmail.com",
		"isGift":            "false",
		// The payer buys for themselves when not gifting.
		"recipientEmail": "buyer@gmail.com",
		"isSelfGift":     "false",
	}, params.Metadata)
}

func TestCreateCheckoutGift(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	h := NewHandler(sessions, "https://chefrecipes.example.com")

	rec := doRequest(t, h, &buyer,
		`{"recipeId":"r1","recipeTitle":"Perfect Steak","price":999,"isGift":true,"recipientEmail":"friend@gmail.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	params := sessions.lastParams
	require.NotNil(t, params)
	assert.Equal(t, "https://chefrecipes.example.com/?gift=success", *params.SuccessURL)
	assert.Equal(t, "https://chefrecipes.example.com/?gift=canceled", *params.CancelURL)
	assert.Equal(t, "🎁 Perfect Steak", *params.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, "A gift for friend@gmail.com", *params.LineItems[0].PriceData.ProductData.Description)
	assert.Equal(t, "friend@gmail.com", params.Metadata["recipientEmail"])
	assert.Equal(t, "true", params.Metadata["isGift"])
	assert.Equal(t, "false", params.Metadata["isSelfGift"])
}

func TestCreateCheckoutSelfGift(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	h := NewHandler(sessions, "https://chefrecipes.example.com")

	rec := doRequest(t, h, &buyer,
		`{"recipeId":"r1","recipeTitle":"Perfect Steak","price":999,"isGift":true,"recipientEmail":"buyer@gmail.com","isSelfGift":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	params := sessions.lastParams
	require.NotNil(t, params)
	assert.Equal(t, "buyer@gmail.com", params.Metadata["recipientEmail"])
	assert.Equal(t, "true", params.Metadata["isGift"])
	assert.Equal(t, "true", params.Metadata["isSelfGift"])
}

func TestCreateCheckoutInvalidRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "missing recipe id", body: `{"price":999}`},
		{name: "missing price", body: `{"recipeId":"r1"}`},
		{name: "zero price", body: `{"recipeId":"r1","price":0}`},
		{name: "negative price", body: `{"recipeId":"r1","price":-1}`},
		{name: "gift without recipient", body: `{"recipeId":"r1","price":999,"isGift":true}`},
		{name: "malformed body", body: `{`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sessions := &fakeSessions{}
			h := NewHandler(sessions, "https://chefrecipes.example.com")

			rec := doRequest(t, h, &buyer, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, sessions.lastParams)
		})
	}
}

func TestCreateCheckoutNoPrincipal(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{}
	h := NewHandler(sessions, "https://chefrecipes.example.com")

	rec := doRequest(t, h, nil, `{"recipeId":"r1","price":999}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessions.lastParams)
}

func TestCreateCheckoutProviderFailure(t *testing.T) {
	t.Parallel()

	sessions := &fakeSessions{err: errors.New("stripe unavailable")}
	h := NewHandler(sessions, "https://chefrecipes.example.com")

	rec := doRequest(t, h, &buyer, `{"recipeId":"r1","price":999}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}
