// Package admin defines the panel's concrete resources — shipping
// profiles, inventory items, store settings, product variants — and wires
// each to a resource client.
//
// Record and payload structs mirror the admin API's JSON contract.
// Records carry ozzo-validation rules that run when a response is decoded,
// so a malformed server payload fails at the fetch boundary with a
// field-level message. Payloads carry the form-time rules checked before
// submission.
//
// Resource tags double as the first query-key segment; they are the only
// coupling between a resource's reads and the invalidations its mutations
// issue.
package admin
