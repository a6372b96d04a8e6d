package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"event-marketplace/internal/auth"
	"event-marketplace/internal/wizard"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RegistrationHandler drives the four-step registration wizard over
// HTTP. Each client gets a flow instance, addressed by id; drafts live
// only in memory and are discarded when the flow finishes or is
// abandoned.
type RegistrationHandler struct {
	authService *auth.Service

	mu    sync.Mutex
	flows map[string]*registrationFlow
}

type registrationFlow struct {
	flow  *wizard.Flow
	draft *wizard.RegistrationDraft
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(authService *auth.Service) *RegistrationHandler {
	return &RegistrationHandler{
		authService: authService,
		flows:       make(map[string]*registrationFlow),
	}
}

type flowStatus struct {
	FlowID      string           `json:"flow_id"`
	CurrentStep int              `json:"current_step"`
	StepCount   int              `json:"step_count"`
	StepName    string           `json:"step_name"`
	State       wizard.FlowState `json:"state"`
	Result      *wizard.Result   `json:"result,omitempty"`
}

func registrationStatus(id string, rf *registrationFlow, result *wizard.Result) flowStatus {
	return flowStatus{
		FlowID:      id,
		CurrentStep: rf.flow.CurrentStep(),
		StepCount:   rf.flow.StepCount(),
		StepName:    rf.flow.StepName(),
		State:       rf.flow.State(),
		Result:      result,
	}
}

// Start creates a fresh wizard instance and returns its id
func (h *RegistrationHandler) Start(w http.ResponseWriter, r *http.Request) {
	draft := &wizard.RegistrationDraft{}
	rf := &registrationFlow{
		flow:  wizard.NewRegistrationFlow(draft),
		draft: draft,
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.flows[id] = rf
	h.mu.Unlock()

	respond(w, http.StatusCreated, registrationStatus(id, rf, nil))
}

// draftPatch accepts the password fields the draft itself never
// serializes. The embedded draft picks up everything else.
type draftPatch struct {
	*wizard.RegistrationDraft
	Password        *string `json:"password"`
	ConfirmPassword *string `json:"confirm_password"`
}

// UpdateDraft merges field edits into the draft without validating;
// validation happens on step transitions.
func (h *RegistrationHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	rf, ok := h.get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown registration flow")
		return
	}

	patch := draftPatch{RegistrationDraft: rf.draft}
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if patch.Password != nil {
		rf.draft.Password = *patch.Password
	}
	if patch.ConfirmPassword != nil {
		rf.draft.ConfirmPassword = *patch.ConfirmPassword
	}

	respond(w, http.StatusOK, registrationStatus(chi.URLParam(r, "id"), rf, nil))
}

// UploadDocuments records the step-4 attachments. Only presence and
// size are kept; identity verification is out of scope.
func (h *RegistrationHandler) UploadDocuments(w http.ResponseWriter, r *http.Request) {
	rf, ok := h.get(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown registration flow")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid multipart form")
		return
	}

	for field, target := range map[string]*wizard.Attachment{
		"profile_image": &rf.draft.ProfileImage,
		"id_document":   &rf.draft.IDDocument,
	} {
		file, header, err := r.FormFile(field)
		if err != nil {
			continue
		}
		file.Close()
		*target = wizard.Attachment{Filename: header.Filename, Size: header.Size}
	}

	respond(w, http.StatusOK, registrationStatus(chi.URLParam(r, "id"), rf, nil))
}

// Next validates the current step and advances when it passes. The
// validation result rides along either way.
func (h *RegistrationHandler) Next(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rf, ok := h.get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown registration flow")
		return
	}

	result, err := rf.flow.Next()
	if err != nil {
		respondError(w, http.StatusConflict, "FLOW_FINISHED", err.Error())
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}
	respond(w, status, registrationStatus(id, rf, &result))
}

// Previous steps back without validating
func (h *RegistrationHandler) Previous(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rf, ok := h.get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown registration flow")
		return
	}

	rf.flow.Previous()
	respond(w, http.StatusOK, registrationStatus(id, rf, nil))
}

// Submit gates on the final step and creates the account. A failed
// submission keeps the flow alive for a retry; success discards it.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rf, ok := h.get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "unknown registration flow")
		return
	}

	result, err := rf.flow.Submit(r.Context(), func(ctx context.Context) error {
		_, err := h.authService.Register(rf.draft.Name, rf.draft.Email, rf.draft.Phone, rf.draft.Password)
		return err
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
		respond(w, http.StatusUnprocessableEntity, registrationStatus(id, rf, &result))
		return
	}

	h.mu.Lock()
	delete(h.flows, id)
	h.mu.Unlock()

	respond(w, http.StatusCreated, map[string]string{"status": "registered", "email": rf.draft.Email})
}

func (h *RegistrationHandler) get(id string) (*registrationFlow, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	rf, ok := h.flows[id]
	return rf, ok
}
