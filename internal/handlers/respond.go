// Package handlers exposes the stores over a JSON HTTP surface. Every
// response uses the same envelope: {"success": ..., "data": ...} or
// {"success": false, "error": {...}}.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"event-marketplace/internal/models"
)

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorData  `json:"error,omitempty"`
}

type errorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondFieldError(w, status, code, message, "")
}

func respondFieldError(w http.ResponseWriter, status int, code, message, field string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{
		Success: false,
		Error:   &errorData{Code: code, Message: message, Field: field},
	})
}

// respondDomainError maps domain errors to HTTP statuses
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrTicketTypeNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrBookingNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, models.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrInvalidInput):
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_FAILED", err.Error())
	case errors.Is(err, models.ErrCheckoutCancelled):
		respondError(w, http.StatusRequestTimeout, "CHECKOUT_CANCELLED", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// decodeJSON reads the request body into v
func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
