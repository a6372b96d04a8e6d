package handlers

import (
	"net/http"

	"event-marketplace/internal/cart"
	"event-marketplace/internal/catalog"
	"event-marketplace/internal/middleware"
	"event-marketplace/internal/models"
	"event-marketplace/internal/services"
)

// CartHandler handles shopping cart and checkout requests
type CartHandler struct {
	cart     *cart.Store
	catalog  *catalog.Catalog
	checkout *services.CheckoutService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartStore *cart.Store, cat *catalog.Catalog, checkout *services.CheckoutService) *CartHandler {
	return &CartHandler{
		cart:     cartStore,
		catalog:  cat,
		checkout: checkout,
	}
}

type cartView struct {
	Items []models.CartLine `json:"items"`
	models.CartSnapshot
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:        h.cart.Items(),
		CartSnapshot: h.cart.Snapshot(),
	}
}

// ViewCart returns the cart lines and derived totals
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.view())
}

type addItemRequest struct {
	EventID      string `json:"event_id"`
	TicketTypeID string `json:"ticket_type_id"`
	Quantity     int    `json:"quantity"`
}

// AddItem adds tickets to the cart. The unit price comes from the
// catalog, never from the client.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if req.Quantity <= 0 {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "quantity must be a positive integer")
		return
	}

	ticketType, err := h.catalog.TicketType(req.EventID, req.TicketTypeID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if !ticketType.IsAvailable() || req.Quantity > ticketType.Available {
		respondError(w, http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK", "not enough tickets available")
		return
	}

	if err := h.cart.AddItem(req.EventID, req.TicketTypeID, req.Quantity, ticketType.Price); err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, h.view())
}

type updateItemRequest struct {
	EventID      string `json:"event_id"`
	TicketTypeID string `json:"ticket_type_id"`
	Quantity     int    `json:"quantity"`
}

// UpdateItem replaces a line's quantity; zero or less removes the line
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	h.cart.UpdateQuantity(req.EventID, req.TicketTypeID, req.Quantity)
	respond(w, http.StatusOK, h.view())
}

type removeItemRequest struct {
	EventID      string `json:"event_id"`
	TicketTypeID string `json:"ticket_type_id"`
}

// RemoveItem deletes a line; removing an absent line succeeds
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	h.cart.RemoveItem(req.EventID, req.TicketTypeID)
	respond(w, http.StatusOK, h.view())
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear()
	respond(w, http.StatusOK, h.view())
}

type checkoutRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// Checkout processes the cart into bookings. The simulated payment
// runs under the request context, so a client that disconnects cancels
// it cleanly.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "Credit Card"
	}

	bookings, err := h.checkout.Checkout(r.Context(), session, req.PaymentMethod)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusCreated, bookings)
}
