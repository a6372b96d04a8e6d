package models

import "errors"

// CartLine represents one (event, ticket type) entry in the shopping
// cart. At most one line exists per pair; repeated adds accumulate into
// the existing line.
type CartLine struct {
	EventID      string `json:"eventId"`
	TicketTypeID string `json:"ticketTypeId"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int    `json:"price"` // Price in cents
}

// Subtotal returns the line total in cents
func (l CartLine) Subtotal() int {
	return l.Quantity * l.UnitPrice
}

// Validate validates the cart line data
func (l CartLine) Validate() error {
	if l.EventID == "" {
		return errors.New("cart line event id is required")
	}

	if l.TicketTypeID == "" {
		return errors.New("cart line ticket type id is required")
	}

	if l.Quantity < 1 {
		return errors.New("cart line quantity must be at least 1")
	}

	if l.UnitPrice < 0 {
		return errors.New("cart line price cannot be negative")
	}

	return nil
}

// CartSnapshot holds totals derived from the current cart lines. It is
// recomputed on every read and never stored.
type CartSnapshot struct {
	TotalItems  int `json:"total_items"`
	TotalAmount int `json:"total_amount"` // Amount in cents
}
