package cacheinfra

import (
	"context"
	"reflect"
	"time"

	"github.com/viccon/sturdyc"

	"github.com/tiiz-app/stuff-vendor-panel/querykey"
)

// Config holds the configuration for the sturdyc-backed store.
type Config struct {
	// Capacity defines the maximum number of entries the store can hold.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of cache shards for concurrent
	// access. Higher values improve concurrency at the cost of memory.
	// Must be greater than 0.
	NumShards int

	// TTL is the default time-to-live for cached entries.
	// Must be greater than 0.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the store reaches capacity. Must be between 1-100.
	EvictionPercentage int

	// EarlyRefresh configures background refreshes of frequently read
	// entries before they expire. Nil disables early refresh.
	EarlyRefresh *EarlyRefreshConfig

	// MissingRecordStorage remembers keys that resolved to no record, so
	// repeated reads of a missing id do not hit the network every time.
	MissingRecordStorage bool

	// EvictionInterval sets how often expired entries are collected.
	// Zero uses the sturdyc default.
	EvictionInterval time.Duration
}

// EarlyRefreshConfig mirrors the sturdyc early-refresh options. Early
// refresh keeps hot entries fresh without ever blocking a read on the
// network, which is what lets a warmed page render from cache while the
// data is re-validated behind it.
type EarlyRefreshConfig struct {
	MinAsyncRefreshTime time.Duration
	MaxAsyncRefreshTime time.Duration
	SyncRefreshTime     time.Duration
	RetryBaseDelay      time.Duration
}

// DefaultConfig returns a Config with defaults suited to an admin panel
// session: a few thousand entries, short TTL, early refresh on.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
		EarlyRefresh: &EarlyRefreshConfig{
			MinAsyncRefreshTime: 10 * time.Second,
			MaxAsyncRefreshTime: 20 * time.Second,
			SyncRefreshTime:     30 * time.Second,
			RetryBaseDelay:      100 * time.Millisecond,
		},
		MissingRecordStorage: true,
		EvictionInterval:     0,
	}
}

// ToSturdycOptions maps the optional parts of the Config to sturdyc
// options. Capacity, NumShards, TTL and EvictionPercentage go straight to
// sturdyc.New and are not included here.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EarlyRefresh != nil {
		options = append(options, sturdyc.WithEarlyRefreshes(
			c.EarlyRefresh.MinAsyncRefreshTime,
			c.EarlyRefresh.MaxAsyncRefreshTime,
			c.EarlyRefresh.SyncRefreshTime,
			c.EarlyRefresh.RetryBaseDelay,
		))
	}

	if c.MissingRecordStorage {
		options = append(options, sturdyc.WithMissingRecordStorage())
	}

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks whether the configuration values are usable.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}

	if c.EarlyRefresh != nil {
		if c.EarlyRefresh.MinAsyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.MinAsyncRefreshTime", Message: "must be non-negative"}
		}
		if c.EarlyRefresh.MaxAsyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.MaxAsyncRefreshTime", Message: "must be non-negative"}
		}
		if c.EarlyRefresh.SyncRefreshTime < 0 {
			return &ConfigError{Field: "EarlyRefresh.SyncRefreshTime", Message: "must be non-negative"}
		}
		if c.EarlyRefresh.RetryBaseDelay < 0 {
			return &ConfigError{Field: "EarlyRefresh.RetryBaseDelay", Message: "must be non-negative"}
		}
	}

	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// sturdycStore adapts a sturdyc client to the store port. Keys are indexed
// by their canonical string form; prefix invalidation scans the key space
// and matches on segment boundaries.
type sturdycStore struct {
	client *sturdyc.Client[any]
}

// NewSturdycStore creates the in-process store backed by a sturdyc client.
func NewSturdycStore(cfg Config) (*sturdycStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &sturdycStore{client: client}, nil
}

// GetOrFetch implements store.Store. fetchFn must have the signature
// func(context.Context) (T, error); it is validated up front so a
// mis-wired call fails with a descriptive error instead of a sturdyc type
// conversion failure.
func (s *sturdycStore) GetOrFetch(ctx context.Context, key querykey.Key, fetchFn any) (any, error) {
	if err := ValidateFetchFn(fetchFn); err != nil {
		return nil, err
	}

	return s.client.GetOrFetch(ctx, key.String(), func(ctx context.Context) (any, error) {
		return CallFetchFn(ctx, fetchFn)
	})
}

// Invalidate implements store.Store. It removes every entry whose key
// falls under the prefix at a segment boundary.
func (s *sturdycStore) Invalidate(ctx context.Context, prefix querykey.Key) error {
	flat := prefix.String()
	for _, key := range s.client.ScanKeys() {
		if querykey.MatchString(key, flat) {
			s.client.Delete(key)
		}
	}
	return nil
}

// ValidateFetchFn checks that fetchFn has the shape
// func(context.Context) (T, error).
func ValidateFetchFn(fetchFn any) error {
	if fetchFn == nil {
		return &ConfigError{Field: "fetchFn", Message: "cannot be nil"}
	}

	fnType := reflect.TypeOf(fetchFn)
	if fnType.Kind() != reflect.Func {
		return &ConfigError{Field: "fetchFn", Message: "must be a function"}
	}
	if fnType.NumIn() != 1 || fnType.NumOut() != 2 {
		return &ConfigError{Field: "fetchFn", Message: "must have signature func(context.Context) (T, error)"}
	}

	contextType := reflect.TypeOf((*context.Context)(nil)).Elem()
	if !fnType.In(0).Implements(contextType) {
		return &ConfigError{Field: "fetchFn", Message: "first parameter must be context.Context"}
	}

	errorType := reflect.TypeOf((*error)(nil)).Elem()
	if !fnType.Out(1).Implements(errorType) {
		return &ConfigError{Field: "fetchFn", Message: "second return value must be error"}
	}

	return nil
}

// CallFetchFn invokes a pre-validated fetchFn through reflection, erasing
// its concrete result type to any.
func CallFetchFn(ctx context.Context, fetchFn any) (any, error) {
	if fn, ok := fetchFn.(func(context.Context) (any, error)); ok {
		return fn(ctx)
	}

	results := reflect.ValueOf(fetchFn).Call([]reflect.Value{reflect.ValueOf(ctx)})

	var result any
	if results[0].IsValid() && results[0].CanInterface() {
		result = results[0].Interface()
	}

	var err error
	if results[1].IsValid() && !results[1].IsNil() {
		err = results[1].Interface().(error)
	}

	return result, err
}

// FetchResultType reports the concrete T of a pre-validated fetchFn.
// Remote store adapters use it to decode cached bytes back into the type
// the caller expects.
func FetchResultType(fetchFn any) reflect.Type {
	return reflect.TypeOf(fetchFn).Out(0)
}
