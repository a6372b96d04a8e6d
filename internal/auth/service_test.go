package auth

import (
	"testing"

	"event-marketplace/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	svc, err := NewService(logger)
	require.NoError(t, err)
	return svc
}

func TestService_LoginLogout(t *testing.T) {
	svc := newTestService(t)

	require.Nil(t, svc.Current())

	session, err := svc.Login("user@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, session.Role)
	assert.Equal(t, "user@example.com", session.Email)

	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, session.UserID, current.UserID)

	svc.Logout()
	assert.Nil(t, svc.Current())

	// Logout with no session is a no-op
	svc.Logout()
	assert.Nil(t, svc.Current())
}

func TestService_LoginAdmin(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, session.Role)
}

func TestService_LoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "user@example.com", password: "wrong"},
		{name: "unknown email", email: "nobody@example.com", password: "password123"},
		{name: "empty", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(tt.email, tt.password)
			assert.ErrorIs(t, err, models.ErrInvalidCredentials)
			assert.Nil(t, svc.Current())
		})
	}
}

func TestService_LoginReplacesSession(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login("user@example.com", "password123")
	require.NoError(t, err)

	session, err := svc.Login("admin@example.com", "admin123")
	require.NoError(t, err)

	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, session.UserID, current.UserID, "one session slot for the whole application")
}

func TestService_Register(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Register("Jane Doe", "Jane@Example.com", "+15550101", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, session.Role)
	assert.Equal(t, "jane@example.com", session.Email, "emails are normalized")

	// Registration logs the user in
	current := svc.Current()
	require.NotNil(t, current)
	assert.Equal(t, "Jane Doe", current.DisplayName)

	// New credentials work for a later login
	svc.Logout()
	_, err = svc.Login("jane@example.com", "secret123")
	assert.NoError(t, err)
}

func TestService_RegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Register("Someone", "user@example.com", "", "secret123")
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestHashPassword_VerifyRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$v=19$")

	match, err := VerifyPassword("secret123", hash)
	require.NoError(t, err)
	assert.True(t, match)

	match, err = VerifyPassword("not-it", hash)
	require.NoError(t, err)
	assert.False(t, match)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("secret123", "not-a-hash")
	assert.Error(t, err)
}
