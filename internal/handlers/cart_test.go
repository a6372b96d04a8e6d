package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-marketplace/internal/cart"
	"event-marketplace/internal/catalog"
	"event-marketplace/internal/middleware"
	"event-marketplace/internal/models"
	"event-marketplace/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartHandler(t *testing.T) *CartHandler {
	t.Helper()
	logger := testLogger()
	cat, err := catalog.New(catalog.SeedEvents(), logger)
	require.NoError(t, err)
	cartStore := cart.NewStore(nil, logger)
	notifier := services.NewNotifier(logger)
	checkout := services.NewCheckoutService(cat, cartStore, notifier, time.Millisecond, logger)
	return NewCartHandler(cartStore, cat, checkout)
}

func jsonRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func envelopeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	env := decodeEnvelope(t, w)
	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	return data
}

func TestAddItem(t *testing.T) {
	h := newTestCartHandler(t)

	w := httptest.NewRecorder()
	req := jsonRequest(t, "POST", "/cart/items", addItemRequest{
		EventID: "1", TicketTypeID: "1", Quantity: 2,
	})
	h.AddItem(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	data := envelopeData(t, w)
	assert.Equal(t, float64(2), data["total_items"])
	assert.Equal(t, float64(2*9900), data["total_amount"])
}

func TestAddItemMergesLines(t *testing.T) {
	h := newTestCartHandler(t)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := jsonRequest(t, "POST", "/cart/items", addItemRequest{
			EventID: "1", TicketTypeID: "1", Quantity: 1,
		})
		h.AddItem(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	h.ViewCart(w, httptest.NewRequest("GET", "/cart", nil))
	data := envelopeData(t, w)
	items, ok := data["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
	assert.Equal(t, float64(2), data["total_items"])
}

func TestAddItemRejectsBadInput(t *testing.T) {
	h := newTestCartHandler(t)

	tests := []struct {
		name       string
		req        addItemRequest
		wantStatus int
	}{
		{
			name:       "zero quantity",
			req:        addItemRequest{EventID: "1", TicketTypeID: "1", Quantity: 0},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown event",
			req:        addItemRequest{EventID: "999", TicketTypeID: "1", Quantity: 1},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown ticket type",
			req:        addItemRequest{EventID: "1", TicketTypeID: "999", Quantity: 1},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "quantity beyond availability",
			req:        addItemRequest{EventID: "1", TicketTypeID: "1", Quantity: 100000},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.AddItem(w, jsonRequest(t, "POST", "/cart/items", tt.req))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, decodeEnvelope(t, w).Success)
		})
	}
}

func TestUpdateAndRemoveItem(t *testing.T) {
	h := newTestCartHandler(t)

	w := httptest.NewRecorder()
	h.AddItem(w, jsonRequest(t, "POST", "/cart/items", addItemRequest{
		EventID: "1", TicketTypeID: "1", Quantity: 3,
	}))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.UpdateItem(w, jsonRequest(t, "PUT", "/cart/items", updateItemRequest{
		EventID: "1", TicketTypeID: "1", Quantity: 1,
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), envelopeData(t, w)["total_items"])

	// Updating to zero removes the line
	w = httptest.NewRecorder()
	h.UpdateItem(w, jsonRequest(t, "PUT", "/cart/items", updateItemRequest{
		EventID: "1", TicketTypeID: "1", Quantity: 0,
	}))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), envelopeData(t, w)["total_items"])

	// Removing an absent line still succeeds
	w = httptest.NewRecorder()
	h.RemoveItem(w, jsonRequest(t, "DELETE", "/cart/items", removeItemRequest{
		EventID: "1", TicketTypeID: "1",
	}))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckout(t *testing.T) {
	h := newTestCartHandler(t)
	session := &models.Session{UserID: "u1", DisplayName: "Demo User", Email: "user@example.com", Role: models.RoleUser}

	w := httptest.NewRecorder()
	h.AddItem(w, jsonRequest(t, "POST", "/cart/items", addItemRequest{
		EventID: "1", TicketTypeID: "1", Quantity: 2,
	}))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req := jsonRequest(t, "POST", "/cart/checkout", checkoutRequest{PaymentMethod: "Credit Card"})
	req = req.WithContext(middleware.WithSession(req.Context(), session))
	h.Checkout(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	bookings, ok := env.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, bookings, 1)

	// Cart is cleared on success
	w = httptest.NewRecorder()
	h.ViewCart(w, httptest.NewRequest("GET", "/cart", nil))
	assert.Equal(t, float64(0), envelopeData(t, w)["total_items"])
}

func TestCheckoutEmptyCart(t *testing.T) {
	h := newTestCartHandler(t)
	session := &models.Session{UserID: "u1", DisplayName: "Demo User", Email: "user@example.com", Role: models.RoleUser}

	w := httptest.NewRecorder()
	req := jsonRequest(t, "POST", "/cart/checkout", checkoutRequest{})
	req = req.WithContext(middleware.WithSession(req.Context(), session))
	h.Checkout(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)
}

func TestCheckoutWithoutSession(t *testing.T) {
	h := newTestCartHandler(t)

	w := httptest.NewRecorder()
	h.AddItem(w, jsonRequest(t, "POST", "/cart/items", addItemRequest{
		EventID: "1", TicketTypeID: "1", Quantity: 1,
	}))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Checkout(w, jsonRequest(t, "POST", "/cart/checkout", checkoutRequest{}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
