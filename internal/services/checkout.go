// Package services holds the flows that tie the stores together:
// checkout, bookings, and notifications. Payment and delivery are
// simulated; everything else is real state.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"event-marketplace/internal/cart"
	"event-marketplace/internal/catalog"
	"event-marketplace/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CheckoutService turns a non-empty cart into confirmed bookings. The
// simulated payment step runs under the caller's context so navigating
// away cancels it; cancellation or payment failure leaves the cart
// intact and records nothing.
type CheckoutService struct {
	catalog      *catalog.Catalog
	cart         *cart.Store
	notifier     *Notifier
	paymentDelay time.Duration

	mu       sync.RWMutex
	bookings []models.Booking

	logger *logrus.Entry
}

// NewCheckoutService creates a checkout service. paymentDelay is how
// long the simulated payment call takes.
func NewCheckoutService(cat *catalog.Catalog, cartStore *cart.Store, notifier *Notifier, paymentDelay time.Duration, logger *logrus.Logger) *CheckoutService {
	return &CheckoutService{
		catalog:      cat,
		cart:         cartStore,
		notifier:     notifier,
		paymentDelay: paymentDelay,
		logger:       logger.WithField("component", "checkout"),
	}
}

// Checkout validates the cart against the catalog, processes a
// simulated payment, and records one confirmed booking per event in
// the cart. On success the cart is cleared.
func (s *CheckoutService) Checkout(ctx context.Context, session *models.Session, paymentMethod string) ([]models.Booking, error) {
	if session == nil {
		return nil, models.ErrUnauthorized
	}

	lines := s.cart.Items()
	if len(lines) == 0 {
		return nil, models.ErrEmptyCart
	}

	// Group lines per event, preserving cart order
	perEvent := make(map[string][]models.CartLine)
	var eventOrder []string
	for _, line := range lines {
		if _, seen := perEvent[line.EventID]; !seen {
			eventOrder = append(eventOrder, line.EventID)
		}
		perEvent[line.EventID] = append(perEvent[line.EventID], line)
	}

	// Validate stock before taking payment
	for _, line := range lines {
		tt, err := s.catalog.TicketType(line.EventID, line.TicketTypeID)
		if err != nil {
			return nil, err
		}
		if line.Quantity > tt.Available {
			return nil, fmt.Errorf("%w: only %d %q tickets available", models.ErrInsufficientStock, tt.Available, tt.Name)
		}
	}

	total := s.cart.TotalAmount()
	paymentID, err := s.processPayment(ctx, total, paymentMethod)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var created []models.Booking
	for _, eventID := range eventOrder {
		booking := models.Booking{
			ID:            uuid.NewString(),
			EventID:       eventID,
			UserID:        session.UserID,
			Status:        models.BookingConfirmed,
			BookingDate:   now,
			PaymentMethod: paymentMethod,
		}

		for _, line := range perEvent[eventID] {
			booking.Tickets = append(booking.Tickets, models.BookingTicket{
				TicketTypeID: line.TicketTypeID,
				Quantity:     line.Quantity,
				Price:        line.UnitPrice,
			})
			booking.TotalAmount += line.Subtotal()
		}

		code, err := models.GenerateConfirmationCode()
		if err != nil {
			return nil, err
		}
		booking.ConfirmationCode = code

		if err := booking.Validate(); err != nil {
			return nil, err
		}
		created = append(created, booking)
	}

	s.mu.Lock()
	s.bookings = append(s.bookings, created...)
	s.mu.Unlock()

	s.cart.Clear()

	for _, booking := range created {
		event, err := s.catalog.EventByID(booking.EventID)
		if err != nil {
			continue
		}
		_ = s.notifier.Send("booking_confirmation", session.Email, map[string]string{
			"name":  session.DisplayName,
			"event": event.Title,
			"code":  booking.ConfirmationCode,
		})
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":    session.UserID,
		"payment_id": paymentID,
		"bookings":   len(created),
		"total":      total,
	}).Info("checkout completed")

	return created, nil
}

// BookingsForUser returns the user's bookings, newest last
func (s *CheckoutService) BookingsForUser(userID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result
}

// BookingsForEvent returns all bookings for an event; used by the
// admin attendees view.
func (s *CheckoutService) BookingsForEvent(eventID string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.Booking
	for _, b := range s.bookings {
		if b.EventID == eventID {
			result = append(result, b)
		}
	}
	return result
}

// BookingByID returns the booking with the given id
func (s *CheckoutService) BookingByID(id string) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, models.ErrBookingNotFound
}

// processPayment simulates the payment provider call: a fixed delay,
// cancellable through ctx.
func (s *CheckoutService) processPayment(ctx context.Context, amount int, paymentMethod string) (string, error) {
	timer := time.NewTimer(s.paymentDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.logger.WithField("amount", amount).Info("payment cancelled")
		return "", fmt.Errorf("%w: %v", models.ErrCheckoutCancelled, ctx.Err())
	case <-timer.C:
	}

	paymentID := fmt.Sprintf("mock_pay_%d_%d", time.Now().Unix(), amount)
	s.logger.WithFields(logrus.Fields{
		"payment_id": paymentID,
		"amount":     amount,
		"method":     paymentMethod,
	}).Info("payment processed")
	return paymentID, nil
}
