// Package catalog holds the event catalog: a fixed seed of events plus
// any events published through the admin creation flow. It is the
// source of truth for display, pricing, and availability computations.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"event-marketplace/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Catalog provides read access to the events available for booking
type Catalog struct {
	mu     sync.RWMutex
	events []models.EventRecord
	byID   map[string]int
	logger *logrus.Entry
}

// New builds a catalog from the given events. Every event must pass
// validation; a ticket-type total that does not reconcile with the
// event capacity is logged as a warning but accepted, since the
// capacity figure is a display-only approximation.
func New(events []models.EventRecord, logger *logrus.Logger) (*Catalog, error) {
	c := &Catalog{
		byID:   make(map[string]int, len(events)),
		logger: logger.WithField("component", "catalog"),
	}

	for _, event := range events {
		if err := event.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog event %q: %w", event.ID, err)
		}
		if _, exists := c.byID[event.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog event id %q", event.ID)
		}

		if total := event.TicketTypeTotal(); total != event.Capacity {
			c.logger.WithFields(logrus.Fields{
				"event_id":          event.ID,
				"capacity":          event.Capacity,
				"ticket_type_total": total,
			}).Warn("event capacity does not reconcile with ticket type totals")
		}

		c.byID[event.ID] = len(c.events)
		c.events = append(c.events, event)
	}

	return c, nil
}

// Events returns all events in catalog order
func (c *Catalog) Events() []models.EventRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	events := make([]models.EventRecord, len(c.events))
	copy(events, c.events)
	return events
}

// EventByID returns the event with the given id
func (c *Catalog) EventByID(id string) (models.EventRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return models.EventRecord{}, models.ErrEventNotFound
	}
	return c.events[i], nil
}

// TicketType returns the given ticket type of the given event
func (c *Catalog) TicketType(eventID, ticketTypeID string) (models.TicketType, error) {
	event, err := c.EventByID(eventID)
	if err != nil {
		return models.TicketType{}, err
	}

	tt := event.TicketType(ticketTypeID)
	if tt == nil {
		return models.TicketType{}, models.ErrTicketTypeNotFound
	}
	return *tt, nil
}

// Featured returns the events flagged for the featured carousel
func (c *Catalog) Featured() []models.EventRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var featured []models.EventRecord
	for _, event := range c.events {
		if event.Featured {
			featured = append(featured, event)
		}
	}
	return featured
}

// Search returns events whose title, description, or location contains
// the query, optionally restricted to a category. An empty query with
// an empty category returns everything.
func (c *Catalog) Search(query, category string) []models.EventRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))

	var matched []models.EventRecord
	for _, event := range c.events {
		if category != "" && !strings.EqualFold(event.Category, category) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(event.Title), query) &&
			!strings.Contains(strings.ToLower(event.Description), query) &&
			!strings.Contains(strings.ToLower(event.Location), query) {
			continue
		}
		matched = append(matched, event)
	}
	return matched
}

// Categories returns the distinct event categories, sorted
func (c *Catalog) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, event := range c.events {
		if !seen[event.Category] {
			seen[event.Category] = true
			categories = append(categories, event.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// Publish appends an admin-created event to the catalog, assigning ids
// to the event and any ticket types that lack one.
func (c *Catalog) Publish(event models.EventRecord) (models.EventRecord, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	for i := range event.TicketTypes {
		if event.TicketTypes[i].ID == "" {
			event.TicketTypes[i].ID = uuid.NewString()
		}
	}

	if err := event.Validate(); err != nil {
		return models.EventRecord{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byID[event.ID]; exists {
		return models.EventRecord{}, fmt.Errorf("duplicate catalog event id %q", event.ID)
	}

	c.byID[event.ID] = len(c.events)
	c.events = append(c.events, event)
	return event, nil
}
