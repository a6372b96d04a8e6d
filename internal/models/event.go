package models

import (
	"errors"
	"strings"
)

// EventStatus represents the lifecycle status of an event
type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventLive     EventStatus = "live"
	EventEnded    EventStatus = "ended"
)

// TicketType represents a type of ticket sold for an event
type TicketType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       int      `json:"price"` // Price in cents
	Available   int      `json:"available"`
	Total       int      `json:"total"`
	Perks       []string `json:"perks,omitempty"`
}

// EventRecord represents an event in the catalog
type EventRecord struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Time        string       `json:"time"` // HH:MM
	Venue       string       `json:"venue"`
	Location    string       `json:"location"`
	Image       string       `json:"image,omitempty"`
	Category    string       `json:"category"`
	Organizer   string       `json:"organizer"`
	Status      EventStatus  `json:"status"`
	Capacity    int          `json:"total_capacity"`
	Sold        int          `json:"sold_tickets"`
	Featured    bool         `json:"featured"`
	TicketTypes []TicketType `json:"ticket_types"`
}

// Validate validates the event data
func (e *EventRecord) Validate() error {
	if err := e.validateTitle(); err != nil {
		return err
	}

	if err := e.validateStatus(); err != nil {
		return err
	}

	if err := e.validateCapacity(); err != nil {
		return err
	}

	for i := range e.TicketTypes {
		if err := e.TicketTypes[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

// validateTitle validates the event title
func (e *EventRecord) validateTitle() error {
	if strings.TrimSpace(e.Title) == "" {
		return errors.New("event title is required")
	}

	if len(e.Title) > 200 {
		return errors.New("event title must be less than 200 characters")
	}

	return nil
}

// validateStatus validates the event status
func (e *EventRecord) validateStatus() error {
	switch e.Status {
	case EventUpcoming, EventLive, EventEnded:
		return nil
	default:
		return errors.New("invalid event status")
	}
}

// validateCapacity validates capacity and sold counts
func (e *EventRecord) validateCapacity() error {
	if e.Capacity < 0 {
		return errors.New("event capacity cannot be negative")
	}

	if e.Sold < 0 {
		return errors.New("sold tickets cannot be negative")
	}

	if e.Sold > e.Capacity {
		return errors.New("sold tickets cannot exceed capacity")
	}

	return nil
}

// TicketTypeTotal returns the sum of ticket-type totals for the event.
// This should reconcile with Capacity but is not enforced; callers that
// care about the mismatch log it instead of rejecting the event.
func (e *EventRecord) TicketTypeTotal() int {
	sum := 0
	for _, tt := range e.TicketTypes {
		sum += tt.Total
	}
	return sum
}

// TicketType lookup by id; returns nil if the event has no such type.
func (e *EventRecord) TicketType(id string) *TicketType {
	for i := range e.TicketTypes {
		if e.TicketTypes[i].ID == id {
			return &e.TicketTypes[i]
		}
	}
	return nil
}

// Validate validates the ticket type data
func (tt *TicketType) Validate() error {
	if strings.TrimSpace(tt.Name) == "" {
		return errors.New("ticket type name is required")
	}

	if tt.Price < 0 {
		return errors.New("ticket price cannot be negative")
	}

	if tt.Total < 0 {
		return errors.New("ticket total cannot be negative")
	}

	if tt.Available < 0 {
		return errors.New("ticket availability cannot be negative")
	}

	if tt.Available > tt.Total {
		return errors.New("ticket availability cannot exceed total")
	}

	return nil
}

// IsAvailable returns true if the ticket type still has unsold tickets
func (tt *TicketType) IsAvailable() bool {
	return tt.Available > 0
}
