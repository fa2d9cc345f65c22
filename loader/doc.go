// Package loader pre-warms the cache on route transitions.
//
// A loader runs before a page renders and ensures the store holds fresh
// data for the exact keys the page's reads will look up — it builds the
// same key/fetch pair the corresponding resource client operation uses, so
// the first render resolves from cache. If the entry is already fresh the
// loader reuses it and does no network work.
//
// Loaders do not catch failures: the router awaits the loader and routes
// errors to its boundary. Double navigations racing to the same key share
// one fetch via singleflight.
package loader
