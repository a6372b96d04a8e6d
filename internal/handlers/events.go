package handlers

import (
	"net/http"

	"event-marketplace/internal/catalog"
	"event-marketplace/internal/models"

	"github.com/go-chi/chi/v5"
)

// EventHandler serves the public catalog
type EventHandler struct {
	catalog *catalog.Catalog
}

// NewEventHandler creates a new event handler
func NewEventHandler(cat *catalog.Catalog) *EventHandler {
	return &EventHandler{catalog: cat}
}

// eventSummary is the list-view shape: the event plus the derived
// display figures the cards show.
type eventSummary struct {
	models.EventRecord
	MinPrice            int     `json:"min_price"`
	AvailabilityPercent float64 `json:"availability_percent"`
}

func summarize(event models.EventRecord) eventSummary {
	return eventSummary{
		EventRecord:         event,
		MinPrice:            catalog.MinPrice(event),
		AvailabilityPercent: catalog.AvailabilityPercent(event),
	}
}

// ListEvents returns catalog events, filtered by the optional q and
// category query parameters.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	events := h.catalog.Search(query, category)
	summaries := make([]eventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, summarize(event))
	}
	respond(w, http.StatusOK, summaries)
}

// FeaturedEvents returns the events flagged for the home carousel
func (h *EventHandler) FeaturedEvents(w http.ResponseWriter, r *http.Request) {
	events := h.catalog.Featured()
	summaries := make([]eventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, summarize(event))
	}
	respond(w, http.StatusOK, summaries)
}

// ListCategories returns the distinct event categories
func (h *EventHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.catalog.Categories())
}

// GetEvent returns one event with its derived display figures
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.catalog.EventByID(chi.URLParam(r, "id"))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, summarize(event))
}
