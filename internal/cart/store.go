// Package cart implements the client-local shopping cart: an ordered
// set of lines keyed by (event, ticket type), persisted to a single
// storage slot on every mutation.
package cart

import (
	"sync"

	"event-marketplace/internal/models"
	"event-marketplace/internal/storage"

	"github.com/sirupsen/logrus"
)

// Store maintains the authoritative set of cart lines and derives
// totals for display and checkout. All mutations are serialized by a
// mutex so the single-writer guarantee holds under real concurrency.
type Store struct {
	mu     sync.Mutex
	lines  []models.CartLine
	slot   *storage.Slot
	logger *logrus.Entry
}

// NewStore creates a cart store backed by the given slot. The stored
// line set is read once here; an absent or corrupt value starts the
// cart empty.
func NewStore(slot *storage.Slot, logger *logrus.Logger) *Store {
	s := &Store{
		slot:   slot,
		logger: logger.WithField("component", "cart"),
	}

	if slot != nil && !slot.Load(&s.lines) {
		s.lines = nil
	}

	return s
}

// AddItem adds tickets to the cart. If a line for the (event, ticket
// type) pair already exists its quantity increases by the given amount;
// otherwise a new line is appended. Quantities must be positive.
func (s *Store) AddItem(eventID, ticketTypeID string, quantity, unitPrice int) error {
	if quantity < 1 {
		return models.ErrInvalidInput
	}

	line := models.CartLine{
		EventID:      eventID,
		TicketTypeID: ticketTypeID,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
	}
	if err := line.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].EventID == eventID && s.lines[i].TicketTypeID == ticketTypeID {
			s.lines[i].Quantity += quantity
			s.persist()
			return nil
		}
	}

	s.lines = append(s.lines, line)
	s.persist()
	return nil
}

// RemoveItem deletes the matching line. Removing a line that does not
// exist is a no-op, not an error.
func (s *Store) RemoveItem(eventID, ticketTypeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.removeLocked(eventID, ticketTypeID)
	s.persist()
}

// UpdateQuantity replaces the quantity of the matching line. A quantity
// of zero or less removes the line. Updating a line that does not exist
// is a no-op; the UI may issue stale callbacks after a removal.
func (s *Store) UpdateQuantity(eventID, ticketTypeID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(eventID, ticketTypeID)
		s.persist()
		return
	}

	for i := range s.lines {
		if s.lines[i].EventID == eventID && s.lines[i].TicketTypeID == ticketTypeID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// Clear empties the cart unconditionally
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// Items returns a copy of the current lines in insertion order
func (s *Store) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLine, len(s.lines))
	copy(items, s.lines)
	return items
}

// Snapshot returns the derived totals for the current lines
func (s *Store) Snapshot() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap models.CartSnapshot
	for _, line := range s.lines {
		snap.TotalItems += line.Quantity
		snap.TotalAmount += line.Subtotal()
	}
	return snap
}

// TotalItems returns the sum of quantities across all lines
func (s *Store) TotalItems() int {
	return s.Snapshot().TotalItems
}

// TotalAmount returns the cart total in cents
func (s *Store) TotalAmount() int {
	return s.Snapshot().TotalAmount
}

func (s *Store) removeLocked(eventID, ticketTypeID string) {
	for i := range s.lines {
		if s.lines[i].EventID == eventID && s.lines[i].TicketTypeID == ticketTypeID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// persist writes the full line set to the slot. A failed write is
// logged and otherwise ignored; the in-memory cart stays authoritative.
func (s *Store) persist() {
	if s.slot == nil {
		return
	}

	if err := s.slot.Save(s.lines); err != nil {
		s.logger.WithError(err).Warn("failed to persist cart")
	}
}
