// Package resource implements the panel's uniform data-access convention:
// one client per resource, five operation shapes, one invalidation policy.
//
// # Operations
//
//   - List: page of records + total count, cached under List(params).
//   - Get: single record, cached under Detail(id, params).
//   - Create: POST; on success invalidates Lists() only.
//   - Update: POST to the record; invalidates Detail(id) and Lists().
//   - Delete: DELETE; invalidates Detail(id) and Lists().
//
// The asymmetry on create is deliberate and load-bearing: a record that
// did not exist cannot have a cached detail entry, so create never touches
// the Details() prefix. Update and delete invalidate the bare Detail(id)
// key, which by the prefix hierarchy covers every params-refined variant
// of that id while leaving other ids alone.
//
// # Errors
//
// Reads and mutations propagate errors untouched — typically a
// *fetch.Error with the HTTP status and message. Nothing is retried or
// swallowed. The one exception is invalidation itself: a store that fails
// to invalidate after a successful mutation is logged and ignored, because
// the remote write already happened and stale entries age out on TTL.
//
// # Wiring
//
// Clients take their store, fetch client and logger through Config.
// Nothing is package-global; two tests construct two fully independent
// stacks. See pkg/di for the container that wires a whole panel.
package resource
