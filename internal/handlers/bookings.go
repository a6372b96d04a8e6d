package handlers

import (
	"net/http"

	"event-marketplace/internal/middleware"
	"event-marketplace/internal/models"
	"event-marketplace/internal/services"

	"github.com/go-chi/chi/v5"
)

// BookingHandler serves a user's bookings
type BookingHandler struct {
	checkout *services.CheckoutService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(checkout *services.CheckoutService) *BookingHandler {
	return &BookingHandler{checkout: checkout}
}

// ListBookings returns the current user's bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondDomainError(w, models.ErrUnauthorized)
		return
	}

	respond(w, http.StatusOK, h.checkout.BookingsForUser(session.UserID))
}

// GetBooking returns one booking; users may only see their own, while
// admins may see any.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondDomainError(w, models.ErrUnauthorized)
		return
	}

	booking, err := h.checkout.BookingByID(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if booking.UserID != session.UserID && session.Role != models.RoleAdmin {
		respondDomainError(w, models.ErrUnauthorized)
		return
	}

	respond(w, http.StatusOK, booking)
}
