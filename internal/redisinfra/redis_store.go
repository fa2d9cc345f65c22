package redisinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tiiz-app/stuff-vendor-panel/internal/cacheinfra"
	"github.com/tiiz-app/stuff-vendor-panel/querykey"
)

// Config holds connection settings for the Redis-backed store.
type Config struct {
	// Addr is the host:port of the Redis server.
	Addr string

	// Password is the optional server password.
	Password string

	// DB selects the Redis logical database.
	DB int

	// TTL is the time-to-live applied to every cached entry.
	// Must be greater than 0.
	TTL time.Duration

	// Namespace is prepended to every key so the panel's entries can
	// coexist with other users of the same Redis instance.
	Namespace string
}

// DefaultConfig returns connection defaults for a local Redis.
func DefaultConfig() Config {
	return Config{
		Addr:      "localhost:6379",
		TTL:       5 * time.Minute,
		Namespace: "vendor_panel:",
	}
}

// Validate checks whether the configuration values are usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return &cacheinfra.ConfigError{Field: "Addr", Message: "cannot be empty"}
	}
	if c.TTL <= 0 {
		return &cacheinfra.ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	return nil
}

// redisStore adapts a Redis client to the store port. Values are stored as
// JSON under the key's canonical string form. Caching is best-effort: a
// Redis read or write failure degrades to fetching from the source, it
// never fails the caller's operation.
type redisStore struct {
	client    *redis.Client
	ttl       time.Duration
	namespace string
}

// NewRedisStore connects to Redis and returns the store adapter. The
// connection is verified with a ping so a misconfigured address surfaces
// at construction time, not on the first page load.
func NewRedisStore(ctx context.Context, cfg Config) (*redisStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis store: ping %s: %w", cfg.Addr, err)
	}

	return &redisStore{
		client:    client,
		ttl:       cfg.TTL,
		namespace: cfg.Namespace,
	}, nil
}

// GetOrFetch implements store.Store. Cached bytes are decoded into the
// fetchFn's result type, so the caller sees the same concrete type a cache
// miss would have produced.
func (s *redisStore) GetOrFetch(ctx context.Context, key querykey.Key, fetchFn any) (any, error) {
	if err := cacheinfra.ValidateFetchFn(fetchFn); err != nil {
		return nil, err
	}

	full := s.namespace + key.String()

	data, err := s.client.Get(ctx, full).Bytes()
	if err == nil {
		return decodeAs(data, cacheinfra.FetchResultType(fetchFn))
	}
	if !errors.Is(err, redis.Nil) && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	result, err := cacheinfra.CallFetchFn(ctx, fetchFn)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(result); err == nil {
		s.client.Set(ctx, full, encoded, s.ttl)
	}

	return result, nil
}

// Invalidate implements store.Store. It scans the namespace for keys under
// the prefix and deletes them. SCAN's glob match over-selects across
// segment boundaries, so each candidate is re-checked with MatchString.
func (s *redisStore) Invalidate(ctx context.Context, prefix querykey.Key) error {
	flat := prefix.String()

	iter := s.client.Scan(ctx, 0, s.namespace+flat+"*", 100).Iterator()
	for iter.Next(ctx) {
		full := iter.Val()
		if querykey.MatchString(strings.TrimPrefix(full, s.namespace), flat) {
			if err := s.client.Del(ctx, full).Err(); err != nil {
				return fmt.Errorf("redis store: delete %s: %w", full, err)
			}
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis store: scan %s: %w", flat, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *redisStore) Close() error {
	return s.client.Close()
}

// decodeAs unmarshals data into a freshly allocated value of type t and
// returns it by value, matching what a direct fetch would have returned.
func decodeAs(data []byte, t reflect.Type) (any, error) {
	target := reflect.New(t)
	if err := json.Unmarshal(data, target.Interface()); err != nil {
		return nil, fmt.Errorf("redis store: decode cached value: %w", err)
	}
	return target.Elem().Interface(), nil
}
