// internal/ws/auth_test.go
package ws

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chat-relay-service/internal/client"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newTestAuthenticator(users map[string]*client.UserInfo) *Authenticator {
	return NewAuthenticator(testSecret, &fakeIdentity{users: users}, zap.NewNop())
}

func TestAuthenticateRequiresTokenAndUserID(t *testing.T) {
	a := newTestAuthenticator(nil)

	_, err := a.Authenticate(context.Background(), "", "u1", "", "")
	assert.ErrorIs(t, err, ErrAuthRequired)

	_, err = a.Authenticate(context.Background(), signToken(t, testSecret), "", "", "")
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestAuthenticateRejectsBadSignature(t *testing.T) {
	a := newTestAuthenticator(map[string]*client.UserInfo{
		"u1": {UserID: "u1", Username: "alice"},
	})

	_, err := a.Authenticate(context.Background(), signToken(t, "wrong-secret"), "u1", "", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	a := newTestAuthenticator(nil)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = a.Authenticate(context.Background(), signed, "u1", "", "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthenticateRejectsUnknownUser(t *testing.T) {
	a := newTestAuthenticator(nil)

	_, err := a.Authenticate(context.Background(), signToken(t, testSecret), "u1", "", "")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestAuthenticateFillsDefaultsFromIdentityRecord(t *testing.T) {
	a := newTestAuthenticator(map[string]*client.UserInfo{
		"u1": {UserID: "u1", Username: "alice", ProfileName: "Alice"},
	})

	id, err := a.Authenticate(context.Background(), signToken(t, testSecret), "u1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "alice", id.Username)
	assert.Equal(t, "Alice", id.DisplayName)
}

func TestAuthenticateHandshakeOverridesRecord(t *testing.T) {
	a := newTestAuthenticator(map[string]*client.UserInfo{
		"u1": {UserID: "u1", Username: "alice", ProfileName: "Alice"},
	})

	id, err := a.Authenticate(context.Background(), signToken(t, testSecret), "u1", "al", "Big Al")
	require.NoError(t, err)
	assert.Equal(t, "al", id.Username)
	assert.Equal(t, "Big Al", id.DisplayName)
}

func TestAuthenticateFallsBackToUsernameForDisplayName(t *testing.T) {
	a := newTestAuthenticator(map[string]*client.UserInfo{
		"u1": {UserID: "u1", Username: "alice"},
	})

	id, err := a.Authenticate(context.Background(), signToken(t, testSecret), "u1", "", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", id.DisplayName)
}
