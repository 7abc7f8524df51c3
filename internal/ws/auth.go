// internal/ws/auth.go
package ws

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"chat-relay-service/internal/client"
)

var (
	ErrAuthRequired = errors.New("authentication required")
	ErrInvalidToken = errors.New("invalid token")
	ErrUnknownUser  = errors.New("user not found")
)

// Identity is the verified identity attached to an admitted connection.
type Identity struct {
	UserID      string
	Username    string
	ProfileName string
	DisplayName string
}

// Authenticator validates handshake credentials before any registry
// interaction. A rejected connection never gets a presence entry.
type Authenticator struct {
	secretKey []byte
	users     client.IdentityClient
	logger    *zap.Logger
}

func NewAuthenticator(secretKey string, users client.IdentityClient, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		secretKey: []byte(secretKey),
		users:     users,
		logger:    logger,
	}
}

// Authenticate verifies the bearer token and confirms the identity store
// holds a record for the claimed userId. Handshake username/displayName are
// used as defaults when the identity record lacks them.
func (a *Authenticator) Authenticate(ctx context.Context, token, userID, username, displayName string) (*Identity, error) {
	if token == "" || userID == "" {
		return nil, ErrAuthRequired
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		a.logger.Debug("handshake token rejected", zap.String("userId", userID), zap.Error(err))
		return nil, ErrInvalidToken
	}

	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		a.logger.Debug("handshake user lookup failed", zap.String("userId", userID), zap.Error(err))
		return nil, ErrUnknownUser
	}

	id := &Identity{
		UserID:      userID,
		Username:    user.Username,
		ProfileName: user.ProfileName,
	}
	if username != "" {
		id.Username = username
	}

	id.DisplayName = displayName
	if id.DisplayName == "" {
		id.DisplayName = id.ProfileName
	}
	if id.DisplayName == "" {
		id.DisplayName = id.Username
	}

	return id, nil
}
