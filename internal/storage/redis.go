package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores values as redis strings under a key prefix
type RedisKV struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisKV wraps an existing client. A zero ttl stores values without expiry.
func NewRedisKV(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisKV {
	return &RedisKV{client: client, prefix: prefix, ttl: ttl}
}

// DialRedis connects to the server in opts and checks it answers
func DialRedis(ctx context.Context, opts Options) (*RedisKV, error) {
	if opts.RedisAddr == "" {
		return nil, errors.New("redis storage: address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.RedisAddr,
		Password: opts.RedisPassword,
		DB:       opts.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis storage: ping %s: %w", opts.RedisAddr, err)
	}
	prefix := opts.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return NewRedisKV(client, prefix, opts.TTL), nil
}

func (r *RedisKV) key(key string) string {
	return r.prefix + key
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis storage: get %s: %w", key, err)
	}
	return data, nil
}

func (r *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis storage: set %s: %w", key, err)
	}
	return nil
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis storage: delete %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying client
func (r *RedisKV) Close() error {
	return r.client.Close()
}
