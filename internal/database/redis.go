// internal/database/redis.go
package database

import (
	"context"

	"github.com/go-redis/redis/v8"

	"chat-relay-service/internal/config"
)

// NewRedis connects to Redis using the configured URL. Redis is optional: the
// relay works without it, losing only the external presence mirror.
func NewRedis(cfg *config.Config) (*redis.Client, error) {
	url := cfg.Redis.URL
	if url == "" {
		url = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return client, nil
}
