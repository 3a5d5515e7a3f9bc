// Package http implements the ingest simulator: a chi router that speaks the
// device protocol.
//
// Every device request passes trace-id, access logging and metrics
// middleware, then device lookup, tag verification and counter verification
// before it reaches an endpoint handler. Responses are signed the same way
// requests are, and the stored counter advances after each accepted
// value-bearing request. The value endpoint skips the tag and counter checks
// so a drifted device can always resynchronize.
package http
