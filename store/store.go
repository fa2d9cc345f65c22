package store

import (
	"context"

	"github.com/tiiz-app/stuff-vendor-panel/querykey"
)

// FetchFn is the function signature a Store expects when fetching from the
// source of truth on a cache miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Store is the cache-store port the data layer talks to. Implementations
// serialize access to each key internally; callers never lock.
//
// GetOrFetch is read-through: it returns the cached value for the key or
// runs fetchFn, caches the result, and returns it. A fetchFn error caches
// nothing. Invalidate drops every entry whose key falls under the given
// prefix, so invalidating a Lists() key covers all parameterized list
// entries at once.
type Store interface {
	GetOrFetch(ctx context.Context, key querykey.Key, fetchFn any) (any, error)
	Invalidate(ctx context.Context, prefix querykey.Key) error
}

// GetOrFetch is the type-safe wrapper over Store.GetOrFetch.
func GetOrFetch[T any](ctx context.Context, s Store, key querykey.Key, fetchFn FetchFn[T]) (T, error) {
	result, err := s.GetOrFetch(ctx, key, fetchFn)
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}
