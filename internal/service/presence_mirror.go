// internal/service/presence_mirror.go
package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const presenceChannel = "presence:events"

// PresenceMirror echoes presence transitions into Redis so external observers
// (other services, dashboards) can see who is online. Best-effort only: the
// in-process registry stays authoritative for routing, mirror failures are
// logged and swallowed.
type PresenceMirror struct {
	redis  *redis.Client
	logger *zap.Logger
}

func NewPresenceMirror(redisClient *redis.Client, logger *zap.Logger) *PresenceMirror {
	return &PresenceMirror{
		redis:  redisClient,
		logger: logger,
	}
}

func (m *PresenceMirror) SetOnline(ctx context.Context, userID string) {
	if m == nil || m.redis == nil {
		return
	}

	key := fmt.Sprintf("presence:%s", userID)
	if err := m.redis.Set(ctx, key, "ONLINE", 0).Err(); err != nil {
		m.logger.Warn("failed to mirror presence online", zap.String("userId", userID), zap.Error(err))
		return
	}

	m.publish(ctx, userID, "ONLINE")
}

func (m *PresenceMirror) SetOffline(ctx context.Context, userID string) {
	if m == nil || m.redis == nil {
		return
	}

	key := fmt.Sprintf("presence:%s", userID)
	if err := m.redis.Del(ctx, key).Err(); err != nil {
		m.logger.Warn("failed to mirror presence offline", zap.String("userId", userID), zap.Error(err))
		return
	}

	m.publish(ctx, userID, "OFFLINE")
}

func (m *PresenceMirror) publish(ctx context.Context, userID, status string) {
	payload, err := json.Marshal(map[string]string{
		"userId": userID,
		"status": status,
	})
	if err != nil {
		return
	}

	if err := m.redis.Publish(ctx, presenceChannel, payload).Err(); err != nil {
		m.logger.Warn("failed to publish presence event", zap.String("userId", userID), zap.Error(err))
	}
}
