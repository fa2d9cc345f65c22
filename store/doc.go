// Package store defines the cache-store port the data layer reads through
// and invalidates against.
//
// # Overview
//
// The package exports the Store interface plus two constructors:
//
//   - NewMemoryStore: in-process sturdyc-backed store, the default for a
//     single panel instance.
//   - NewRedisStore: Redis-backed store for deployments where several
//     replicas should share cached reads.
//
// A Store offers exactly two operations. GetOrFetch is read-through: it
// either reuses a fresh cached entry or runs the fetch function and caches
// its result. Invalidate drops every entry whose key falls under a prefix,
// which is what makes the mutation convention in the resource package
// work — invalidating Lists() covers every parameterized list entry
// without enumerating them.
//
// # Basic Usage
//
//	s, err := store.NewMemoryStore(store.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	keys := querykey.NewFactory("shipping_profile")
//	profile, err := store.GetOrFetch(ctx, s, keys.Detail("sp_1", nil),
//		func(ctx context.Context) (admin.ShippingProfile, error) {
//			return client.Get(ctx, "sp_1", nil)
//		})
//
// Stores are handed to clients and loaders explicitly. There is no
// package-level store instance: each test constructs its own, and two
// panels in one process never share entries by accident.
package store
