// Package storage provides the small key-value stores that hold client-owned
// state such as planner selections and favorite recipes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Backend names accepted by New
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// DefaultKeyPrefix namespaces redis keys
const DefaultKeyPrefix = "companion:"

var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidKey is returned for empty keys or keys with path characters
	ErrInvalidKey = errors.New("invalid key")
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// KV stores opaque values by key. Implementations are safe for concurrent use.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Options selects and configures a KV backend
type Options struct {
	Backend string
	// Dir is the state directory for the file backend
	Dir string
	// Redis connection settings
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
	// TTL expires redis values; zero keeps them forever
	TTL time.Duration
}

// New opens the backend named in opts. The returned close function releases
// any connection and is never nil.
func New(ctx context.Context, opts Options) (KV, func() error, error) {
	noop := func() error { return nil }
	switch opts.Backend {
	case BackendMemory:
		return NewMemoryKV(), noop, nil
	case BackendFile, "":
		kv, err := NewFileKV(opts.Dir)
		if err != nil {
			return nil, noop, err
		}
		return kv, noop, nil
	case BackendRedis:
		kv, err := DialRedis(ctx, opts)
		if err != nil {
			return nil, noop, err
		}
		return kv, kv.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
