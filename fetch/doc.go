// Package fetch is the HTTP boundary of the data layer: a thin JSON client
// for the admin API plus the single typed error every operation surfaces.
//
// Each call issues exactly one request. Failures are never retried or
// recovered here; a non-2xx response comes back as a *Error carrying the
// HTTP status and server message, and transport failures come back
// wrapped. Callers branch on the error (error state, boundary, toast) —
// the client does not decide for them.
//
// Decoded payloads that implement ozzo-validation's Validatable are
// checked at this boundary, so a server response missing required fields
// fails fast with a field-level message.
package fetch
