package wizard

import (
	"strings"

	"event-marketplace/internal/models"
)

// DraftTicketType is one ticket type being declared in the
// event-creation wizard.
type DraftTicketType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"` // Price in cents
	Total       int    `json:"total"`
}

// EventDraft accumulates the event-creation form across its four steps
type EventDraft struct {
	// Step 1: basic info
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`

	// Step 2: date and location
	Date     string `json:"date"`
	Time     string `json:"time"`
	Venue    string `json:"venue"`
	Location string `json:"location"`

	// Step 3: tickets
	TicketTypes []DraftTicketType `json:"ticket_types"`

	// Step 4: review
	Organizer string `json:"organizer"`
	Image     string `json:"image"`
}

// NewEventCreationFlow builds the four-step event-creation wizard over
// the given draft.
func NewEventCreationFlow(draft *EventDraft) *Flow {
	return NewFlow([]Step{
		{Name: "basic", Validate: func() Result { return validateBasicInfo(draft) }},
		{Name: "schedule", Validate: func() Result { return validateSchedule(draft) }},
		{Name: "tickets", Validate: func() Result { return validateTickets(draft) }},
		{Name: "review", Validate: func() Result { return validateReview(draft) }},
	})
}

// Build assembles the catalog event the draft describes. Capacity is
// the sum of ticket-type totals and every type starts fully available.
func (d *EventDraft) Build() models.EventRecord {
	event := models.EventRecord{
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		Date:        d.Date,
		Time:        d.Time,
		Venue:       d.Venue,
		Location:    d.Location,
		Organizer:   d.Organizer,
		Image:       d.Image,
		Status:      models.EventUpcoming,
	}

	for _, tt := range d.TicketTypes {
		event.TicketTypes = append(event.TicketTypes, models.TicketType{
			Name:        tt.Name,
			Description: tt.Description,
			Price:       tt.Price,
			Available:   tt.Total,
			Total:       tt.Total,
		})
		event.Capacity += tt.Total
	}

	return event
}

func validateBasicInfo(d *EventDraft) Result {
	if strings.TrimSpace(d.Title) == "" ||
		strings.TrimSpace(d.Description) == "" ||
		strings.TrimSpace(d.Category) == "" {
		return Fail("", "please fill in the event title, description, and category")
	}
	return OK()
}

func validateSchedule(d *EventDraft) Result {
	if strings.TrimSpace(d.Date) == "" ||
		strings.TrimSpace(d.Time) == "" ||
		strings.TrimSpace(d.Venue) == "" ||
		strings.TrimSpace(d.Location) == "" {
		return Fail("", "please fill in the event date, time, venue, and location")
	}
	return OK()
}

func validateTickets(d *EventDraft) Result {
	if len(d.TicketTypes) == 0 {
		return Fail("ticket_types", "declare at least one ticket type")
	}

	for _, tt := range d.TicketTypes {
		if strings.TrimSpace(tt.Name) == "" {
			return Fail("ticket_types", "every ticket type needs a name")
		}
		if tt.Price <= 0 {
			return Fail("ticket_types", "every ticket type needs a price greater than zero")
		}
		if tt.Total <= 0 {
			return Fail("ticket_types", "every ticket type needs a quantity greater than zero")
		}
	}

	return OK()
}

func validateReview(d *EventDraft) Result {
	if strings.TrimSpace(d.Organizer) == "" {
		return Fail("organizer", "please enter the organizer name")
	}
	return OK()
}
