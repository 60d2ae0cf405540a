// Package contextkeys holds the typed keys for values carried on the
// request context, shared between middleware and the logger.
package contextkeys

// Custom key type to avoid context collisions.
type contextKey string

const (
	// RequestID tags every log line of a request.
	RequestID = contextKey("request_id")
	// UserID is set once the session token is parsed.
	UserID = contextKey("user_id")
)
