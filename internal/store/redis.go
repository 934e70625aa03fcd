package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis persists records as plain string keys, the closest analogue of
// the original browser profile storage.
type Redis struct {
	records
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	r := &Redis{client: client}
	r.records = records{kv: r}
	return r
}

func (r *Redis) set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *Redis) get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Redis) del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}
