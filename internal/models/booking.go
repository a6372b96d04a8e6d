package models

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingTicket represents one ticket-type purchase inside a booking
type BookingTicket struct {
	TicketTypeID string `json:"ticket_type_id"`
	Quantity     int    `json:"quantity"`
	Price        int    `json:"price"` // Unit price in cents at booking time
}

// Booking represents a completed or in-progress ticket purchase
type Booking struct {
	ID               string          `json:"id"`
	EventID          string          `json:"event_id"`
	UserID           string          `json:"user_id"`
	Tickets          []BookingTicket `json:"tickets"`
	TotalAmount      int             `json:"total_amount"` // Amount in cents
	Status           BookingStatus   `json:"status"`
	BookingDate      time.Time       `json:"booking_date"`
	PaymentMethod    string          `json:"payment_method"`
	ConfirmationCode string          `json:"confirmation_code"`
}

// Validate validates the booking data
func (b *Booking) Validate() error {
	if b.EventID == "" {
		return errors.New("booking event id is required")
	}

	if b.UserID == "" {
		return errors.New("booking user id is required")
	}

	if len(b.Tickets) == 0 {
		return errors.New("booking must contain at least one ticket")
	}

	if b.TotalAmount < 0 {
		return errors.New("booking total cannot be negative")
	}

	switch b.Status {
	case BookingPending, BookingConfirmed, BookingCancelled:
	default:
		return errors.New("invalid booking status")
	}

	return nil
}

// TicketCount returns the total number of tickets in the booking
func (b *Booking) TicketCount() int {
	count := 0
	for _, t := range b.Tickets {
		count += t.Quantity
	}
	return count
}

// GenerateConfirmationCode generates a code in the form EVT-XXXXXX
// using a cryptographically random 6-digit suffix.
func GenerateConfirmationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate confirmation code: %w", err)
	}
	return fmt.Sprintf("EVT-%06d", n.Int64()), nil
}
