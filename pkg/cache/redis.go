package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nextup-mentor/nextup-api/pkg/config"
)

// KeyPrefix namespaces every key written by this service.
const KeyPrefix = "nextup"

// NewRedis returns a configured Redis client, verified with a ping.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	return client, nil
}

// Key joins parts under the service prefix, e.g. Key("packages", "active").
func Key(parts ...string) string {
	return KeyPrefix + ":" + strings.Join(parts, ":")
}
