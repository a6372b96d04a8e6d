package handlers

import (
	"net/http"

	"event-marketplace/internal/auth"
	"event-marketplace/internal/middleware"

	"github.com/gorilla/sessions"
)

// AuthHandler handles login, logout, and the current-user endpoint
type AuthHandler struct {
	authService *auth.Service
	store       sessions.Store
	limiter     *middleware.LoginRateLimiter
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service, store sessions.Store, limiter *middleware.LoginRateLimiter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
		limiter:     limiter,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the credential table and establishes
// the cookie session. Failed attempts are rate limited per client.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)
	if !h.limiter.Allow(ip) {
		respondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many login attempts, try again later")
		return
	}

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	session, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		h.limiter.Record(ip)
		respondDomainError(w, err)
		return
	}
	h.limiter.Reset(ip)

	if err := h.saveCookieSession(w, r, session.UserID); err != nil {
		respondError(w, http.StatusInternalServerError, "SESSION_ERROR", "failed to save session")
		return
	}

	respond(w, http.StatusOK, session)
}

// Logout destroys both the service session and the cookie session
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout()

	cookieSession, err := h.store.Get(r, middleware.SessionName)
	if err == nil {
		cookieSession.Options.MaxAge = -1
		_ = cookieSession.Save(r, w)
	}

	respond(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// CurrentUser returns the session loaded by the middleware, or null
// for anonymous requests.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, middleware.GetSessionFromContext(r.Context()))
}

func (h *AuthHandler) saveCookieSession(w http.ResponseWriter, r *http.Request, userID string) error {
	cookieSession, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		// A stale or tampered cookie still yields a usable new session
		cookieSession, err = h.store.New(r, middleware.SessionName)
		if err != nil {
			return err
		}
	}

	cookieSession.Values["user_id"] = userID
	return cookieSession.Save(r, w)
}
