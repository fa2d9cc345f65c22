package store

import (
	"context"
	"time"

	"github.com/tiiz-app/stuff-vendor-panel/internal/cacheinfra"
	"github.com/tiiz-app/stuff-vendor-panel/internal/redisinfra"
)

// Config exposes the in-process store configuration to consumers of the
// store package.
type Config struct {
	Capacity             int
	NumShards            int
	TTL                  time.Duration
	EvictionPercentage   int
	EarlyRefresh         *EarlyRefreshConfig
	MissingRecordStorage bool
	EvictionInterval     time.Duration
}

// EarlyRefreshConfig mirrors the underlying early refresh options.
type EarlyRefreshConfig struct {
	MinAsyncRefreshTime time.Duration
	MaxAsyncRefreshTime time.Duration
	SyncRefreshTime     time.Duration
	RetryBaseDelay      time.Duration
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewMemoryStore constructs the default in-process store backed by
// sturdyc. It is the right choice for a single panel instance; use
// NewRedisStore when several replicas must share one cache.
func NewMemoryStore(cfg Config) (Store, error) {
	return cacheinfra.NewSturdycStore(cfg.toInternal())
}

// RedisConfig exposes the Redis store configuration.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	TTL       time.Duration
	Namespace string
}

// DefaultRedisConfig returns connection defaults for a local Redis.
func DefaultRedisConfig() RedisConfig {
	internal := redisinfra.DefaultConfig()
	return RedisConfig{
		Addr:      internal.Addr,
		TTL:       internal.TTL,
		Namespace: internal.Namespace,
	}
}

// NewRedisStore constructs a Redis-backed store for deployments where
// multiple panel replicas share cached reads.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (Store, error) {
	return redisinfra.NewRedisStore(ctx, redisinfra.Config{
		Addr:      cfg.Addr,
		Password:  cfg.Password,
		DB:        cfg.DB,
		TTL:       cfg.TTL,
		Namespace: cfg.Namespace,
	})
}

func (c Config) toInternal() cacheinfra.Config {
	var early *cacheinfra.EarlyRefreshConfig
	if c.EarlyRefresh != nil {
		early = &cacheinfra.EarlyRefreshConfig{
			MinAsyncRefreshTime: c.EarlyRefresh.MinAsyncRefreshTime,
			MaxAsyncRefreshTime: c.EarlyRefresh.MaxAsyncRefreshTime,
			SyncRefreshTime:     c.EarlyRefresh.SyncRefreshTime,
			RetryBaseDelay:      c.EarlyRefresh.RetryBaseDelay,
		}
	}

	return cacheinfra.Config{
		Capacity:             c.Capacity,
		NumShards:            c.NumShards,
		TTL:                  c.TTL,
		EvictionPercentage:   c.EvictionPercentage,
		EarlyRefresh:         early,
		MissingRecordStorage: c.MissingRecordStorage,
		EvictionInterval:     c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	var early *EarlyRefreshConfig
	if cfg.EarlyRefresh != nil {
		early = &EarlyRefreshConfig{
			MinAsyncRefreshTime: cfg.EarlyRefresh.MinAsyncRefreshTime,
			MaxAsyncRefreshTime: cfg.EarlyRefresh.MaxAsyncRefreshTime,
			SyncRefreshTime:     cfg.EarlyRefresh.SyncRefreshTime,
			RetryBaseDelay:      cfg.EarlyRefresh.RetryBaseDelay,
		}
	}

	return Config{
		Capacity:             cfg.Capacity,
		NumShards:            cfg.NumShards,
		TTL:                  cfg.TTL,
		EvictionPercentage:   cfg.EvictionPercentage,
		EarlyRefresh:         early,
		MissingRecordStorage: cfg.MissingRecordStorage,
		EvictionInterval:     cfg.EvictionInterval,
	}
}
