package db

import (
	"context"
	"log"
	"time"

	"github.com/Karnakarj/areahunt/internal/config"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when no address is configured or the server is
// unreachable; callers fall back to another storage backend.
func ConnectRedis(cfg config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s: %v", cfg.RedisAddr, err)
		_ = client.Close()
		return nil
	}
	return client
}
