package middleware

import (
	"context"
	"net/http"

	"event-marketplace/internal/auth"
	"event-marketplace/internal/models"

	"github.com/gorilla/sessions"
)

type contextKey string

const sessionContextKey contextKey = "session"

// SessionName is the cookie session used by the HTTP layer
const SessionName = "session"

// AuthMiddleware loads the current user from the cookie session and
// gates routes by authentication and role.
type AuthMiddleware struct {
	authService *auth.Service
	store       sessions.Store
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService *auth.Service, store sessions.Store) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		store:       store,
	}
}

// LoadUser resolves the session cookie to a user and stores the
// session in the request context. Requests without a valid session
// continue anonymously.
func (m *AuthMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookieSession, err := m.store.Get(r, SessionName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := cookieSession.Values["user_id"].(string)
		if !ok || userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.authService.UserByID(userID)
		if err != nil {
			// Stale cookie for a user that no longer exists; clear it
			cookieSession.Options.MaxAge = -1
			_ = cookieSession.Save(r, w)
			next.ServeHTTP(w, r)
			return
		}

		session := &models.Session{
			UserID:      user.ID,
			DisplayName: user.Name,
			Email:       user.Email,
			Role:        user.Role,
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects anonymous requests
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetSessionFromContext(r.Context()) == nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests from anyone but admins
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := GetSessionFromContext(r.Context())
		if session == nil {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		if session.Role != models.RoleAdmin {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetSessionFromContext retrieves the session from the request context,
// or nil for anonymous requests.
func GetSessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(sessionContextKey).(*models.Session)
	return session
}

// WithSession returns a context carrying the given session; used by
// handler tests.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}
