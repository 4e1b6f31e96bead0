// Package contextkeys holds the context keys shared across packages, so
// middleware and logger agree on where request-scoped values live.
package contextkeys

type contextKey string

const (
	// RequestIDKey carries the per-request correlation id.
	RequestIDKey = contextKey("request_id")

	// UserIDKey carries the authenticated admin user's id.
	UserIDKey = contextKey("user_id")
)
