package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Redis is a Storage backed by Redis. Keys are namespaced per session and
// every write refreshes the TTL, so the data expires once the session is
// idle for longer than the TTL.
type Redis struct {
	client    *goredis.Client
	namespace string
	ttl       time.Duration
}

// OpenRedis connects to Redis and verifies the connection with a ping.
func OpenRedis(ctx context.Context, cfg RedisConfig, session string, ttl time.Duration) (*Redis, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("store: redis ping %s: %w", cfg.Addr, err)
	}
	return &Redis{client: client, namespace: "luggage:" + session + ":", ttl: ttl}, nil
}

func (r *Redis) key(k string) string {
	return r.namespace + k
}

// Get implements Storage.
func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: redis get %s: %w", key, err)
	}
	return v, true, nil
}

// Set implements Storage.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("store: redis set %s: %w", key, err)
	}
	return nil
}

// Remove implements Storage.
func (r *Redis) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("store: redis del %s: %w", key, err)
	}
	return nil
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}
