// Package auth holds the session store: the process-wide single slot
// for the current authenticated user, backed by a static credential
// table plus any accounts added through registration.
package auth

import (
	"strings"
	"sync"
	"time"

	"event-marketplace/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service manages users and the active session. Exactly one session is
// active at a time for the whole application; logging in replaces any
// previous session.
type Service struct {
	mu      sync.RWMutex
	users   map[string]*models.User // keyed by lower-cased email
	current *models.Session
	logger  *logrus.Entry
}

// NewService creates the session store seeded with the demo credential
// table: a regular user and an administrator.
func NewService(logger *logrus.Logger) (*Service, error) {
	s := &Service{
		users:  make(map[string]*models.User),
		logger: logger.WithField("component", "auth"),
	}

	seed := []struct {
		name, email, phone, password string
		role                         models.UserRole
	}{
		{"Demo User", "user@example.com", "+1234567890", "password123", models.RoleUser},
		{"Demo Admin", "admin@example.com", "+1234567891", "admin123", models.RoleAdmin},
	}

	for _, u := range seed {
		if _, err := s.createUser(u.name, u.email, u.phone, u.password, u.role); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Login verifies the credentials and makes the matching user the
// active session. A mismatch of either email or password returns
// models.ErrInvalidCredentials without revealing which.
func (s *Service) Login(email, password string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[normalizeEmail(email)]
	if !ok {
		return nil, models.ErrInvalidCredentials
	}

	match, err := VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.logger.WithField("email", normalizeEmail(email)).Info("login failed")
		return nil, models.ErrInvalidCredentials
	}

	s.current = &models.Session{
		UserID:      user.ID,
		DisplayName: user.Name,
		Email:       user.Email,
		Role:        user.Role,
	}
	s.logger.WithField("user_id", user.ID).Info("login succeeded")
	return s.current, nil
}

// Register creates a user account and logs it in
func (s *Service) Register(name, email, phone, password string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.createUser(name, email, phone, password, models.RoleUser)
	if err != nil {
		return nil, err
	}

	s.current = &models.Session{
		UserID:      user.ID,
		DisplayName: user.Name,
		Email:       user.Email,
		Role:        user.Role,
	}
	return s.current, nil
}

// Logout destroys the active session. Logging out with no session is a
// no-op.
func (s *Service) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the active session, or nil for anonymous use
func (s *Service) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	session := *s.current
	return &session
}

// UserByID returns the user with the given id
func (s *Service) UserByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *Service) createUser(name, email, phone, password string, role models.UserRole) (*models.User, error) {
	key := normalizeEmail(email)
	if _, exists := s.users[key]; exists {
		return nil, models.ErrDuplicateEmail
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        key,
		Phone:        phone,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	s.users[key] = user
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
