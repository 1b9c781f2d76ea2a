package ports

import (
	"time"

	"marketplace/internal/core/domain/model/session"
)

// SessionStore defines the contract for the process-local session
// registry. Sessions are created on login, looked up per request, removed
// explicitly on logout, and swept after expiry. Implementations must be
// safe for concurrent use and must never leak one principal's session
// into another request.
type SessionStore interface {
	// Put registers a session under its token.
	Put(s session.Session) error

	// Get returns the session for a token. Returns an object-not-found
	// error for unknown tokens; expired sessions are still returned and
	// rejected by the access policy.
	Get(token string) (session.Session, error)

	// Delete removes a session. Deleting an unknown token is a no-op.
	Delete(token string)

	// DeleteExpired removes all sessions expired at the given instant
	// and returns how many were removed.
	DeleteExpired(now time.Time) int
}
