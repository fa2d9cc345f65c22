// Package querykey builds typed, hierarchical cache keys for admin API
// resources.
//
// # Overview
//
// Every cached read in the panel is indexed by a Key produced by a Factory
// bound to a resource tag:
//
//	keys := querykey.NewFactory("shipping_profile")
//	keys.All()                      // shipping_profile
//	keys.Lists()                    // shipping_profile::list
//	keys.List(params)               // shipping_profile::list::<encoded params>
//	keys.Details()                  // shipping_profile::detail
//	keys.Detail("sp_1", params)     // shipping_profile::detail::sp_1::<encoded params>
//
// # Prefix hierarchy
//
// Keys form a strict prefix hierarchy: Lists() is a prefix of every
// List(params) result and Details() is a prefix of every Detail(id, params)
// result. Mutation handlers rely on this to invalidate every parameterized
// list entry with a single Lists() prefix, without enumerating the params
// that produced them.
//
// # Equality
//
// Keys are pure values. Two keys are equal when their segments are equal,
// and structurally identical params always encode to the same segment, so
// List(p) called twice with equal params yields equal keys. See
// DefaultEncoder for the encoding rules.
//
// # Custom encoders
//
// ParamEncoder can be implemented to control the encoded form of params,
// for example to produce shorter keys for a remote cache backend. The
// encoder must be deterministic: equal values must encode to equal strings.
package querykey
