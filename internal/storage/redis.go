package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ridebook:"

// RedisGateway stores snapshots as plain Redis string values.
type RedisGateway struct {
	client *redis.Client
}

// NewRedisGateway creates a Redis-backed gateway.
func NewRedisGateway(client *redis.Client) *RedisGateway {
	return &RedisGateway{client: client}
}

var _ Gateway = (*RedisGateway)(nil)

// Load retrieves the snapshot stored under key.
func (g *RedisGateway) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := g.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return data, nil
}

// Save stores the snapshot under key with no expiry.
func (g *RedisGateway) Save(ctx context.Context, key string, data []byte) error {
	return g.client.Set(ctx, keyPrefix+key, data, 0).Err()
}

// Delete removes the snapshot stored under key.
func (g *RedisGateway) Delete(ctx context.Context, key string) error {
	return g.client.Del(ctx, keyPrefix+key).Err()
}
