package catalog

import "event-marketplace/internal/models"

// Pricing and availability helpers. These are pure functions over an
// EventRecord so display code and tests get identical results for
// identical inputs.

// MinPrice returns the lowest ticket price for the event in cents, or
// 0 when the event declares no ticket types.
func MinPrice(event models.EventRecord) int {
	if len(event.TicketTypes) == 0 {
		return 0
	}

	min := event.TicketTypes[0].Price
	for _, tt := range event.TicketTypes[1:] {
		if tt.Price < min {
			min = tt.Price
		}
	}
	return min
}

// AvailabilityPercent returns the percentage of event capacity still
// unsold, in the range [0, 100]. An event with zero capacity reports
// 0% rather than dividing by zero.
func AvailabilityPercent(event models.EventRecord) float64 {
	if event.Capacity <= 0 {
		return 0
	}

	remaining := event.Capacity - event.Sold
	if remaining < 0 {
		remaining = 0
	}
	return float64(remaining) / float64(event.Capacity) * 100
}

// Remaining returns the unsold count for the given ticket type, or 0
// when the event has no such type.
func Remaining(event models.EventRecord, ticketTypeID string) int {
	tt := event.TicketType(ticketTypeID)
	if tt == nil {
		return 0
	}
	return tt.Available
}
