package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"event-marketplace/internal/catalog"
	"event-marketplace/internal/services"
	"event-marketplace/internal/wizard"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AdminHandler serves the administrative surface: the event-creation
// wizard, event attendees, and notification templates.
type AdminHandler struct {
	catalog  *catalog.Catalog
	checkout *services.CheckoutService
	notifier *services.Notifier

	mu    sync.Mutex
	flows map[string]*eventFlow
}

type eventFlow struct {
	flow  *wizard.Flow
	draft *wizard.EventDraft
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(cat *catalog.Catalog, checkout *services.CheckoutService, notifier *services.Notifier) *AdminHandler {
	return &AdminHandler{
		catalog:  cat,
		checkout: checkout,
		notifier: notifier,
		flows:    make(map[string]*eventFlow),
	}
}

func eventFlowStatus(id string, ef *eventFlow, result *wizard.Result) flowStatus {
	return flowStatus{
		FlowID:      id,
		CurrentStep: ef.flow.CurrentStep(),
		StepCount:   ef.flow.StepCount(),
		StepName:    ef.flow.StepName(),
		State:       ef.flow.State(),
		Result:      result,
	}
}

// StartEventFlow creates a fresh event-creation wizard
func (h *AdminHandler) StartEventFlow(w http.ResponseWriter, r *http.Request) {
	draft := &wizard.EventDraft{}
	ef := &eventFlow{
		flow:  wizard.NewEventCreationFlow(draft),
		draft: draft,
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.flows[id] = ef
	h.mu.Unlock()

	respond(w, http.StatusCreated, eventFlowStatus(id, ef, nil))
}

// UpdateEventDraft merges field edits into the draft
func (h *AdminHandler) UpdateEventDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ef, ok := h.getFlow(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown event flow")
		return
	}

	if err := decodeJSON(r, ef.draft); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	respond(w, http.StatusOK, eventFlowStatus(id, ef, nil))
}

// EventFlowNext validates the current step and advances when it passes
func (h *AdminHandler) EventFlowNext(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ef, ok := h.getFlow(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown event flow")
		return
	}

	result, err := ef.flow.Next()
	if err != nil {
		respondError(w, http.StatusConflict, "FLOW_FINISHED", err.Error())
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	respond(w, status, eventFlowStatus(id, ef, &result))
}

// EventFlowPrevious steps back without validating
func (h *AdminHandler) EventFlowPrevious(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ef, ok := h.getFlow(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown event flow")
		return
	}

	ef.flow.Previous()
	respond(w, http.StatusOK, eventFlowStatus(id, ef, nil))
}

// SubmitEventFlow publishes the drafted event to the catalog
func (h *AdminHandler) SubmitEventFlow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ef, ok := h.getFlow(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown event flow")
		return
	}

	var published interface{}
	result, err := ef.flow.Submit(r.Context(), func(ctx context.Context) error {
		event, err := h.catalog.Publish(ef.draft.Build())
		if err != nil {
			return err
		}
		published = event
		return nil
	})
	if err != nil {
		if errors.Is(err, wizard.ErrAlreadySubmitted) {
			respondError(w, http.StatusConflict, "FLOW_FINISHED", err.Error())
			return
		}
		respondDomainError(w, err)
		return
	}
	if !result.Valid {
		respond(w, http.StatusUnprocessableEntity, eventFlowStatus(id, ef, &result))
		return
	}

	h.mu.Lock()
	delete(h.flows, id)
	h.mu.Unlock()

	respond(w, http.StatusCreated, published)
}

// Attendees lists bookings for an event
func (h *AdminHandler) Attendees(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "id")
	if _, err := h.catalog.EventByID(eventID); err != nil {
		respondDomainError(w, err)
		return
	}

	respond(w, http.StatusOK, h.checkout.BookingsForEvent(eventID))
}

// ListTemplates returns the notification templates
func (h *AdminHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.notifier.Templates())
}

type updateTemplateRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// UpdateTemplate replaces a notification template's subject and body
func (h *AdminHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var req updateTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	name := chi.URLParam(r, "name")
	if err := h.notifier.UpdateTemplate(name, req.Subject, req.Body); err != nil {
		respondDomainError(w, err)
		return
	}

	tmpl, err := h.notifier.Template(name)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respond(w, http.StatusOK, tmpl)
}

func (h *AdminHandler) getFlow(id string) (*eventFlow, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ef, ok := h.flows[id]
	return ef, ok
}
