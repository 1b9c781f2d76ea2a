// Package sessionstore provides the in-memory implementation of the
// session registry. Sessions are process-local on purpose: an opaque
// token is worthless after a restart, which is exactly the revocation
// property logout needs. Expired entries are swept by a background job.
package sessionstore

import (
	"sync"
	"time"

	"marketplace/internal/core/domain/model/session"
	"marketplace/internal/pkg/errs"
)

// InMemorySessionStore keeps active sessions keyed by token. Safe for
// concurrent use.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

// NewInMemorySessionStore creates an empty session store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]session.Session),
	}
}

// Put registers a session under its token.
func (s *InMemorySessionStore) Put(sess session.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token()] = sess
	return nil
}

// Get returns the session for a token. Expired sessions are still
// returned; rejecting them is the access policy's call.
func (s *InMemorySessionStore) Get(token string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	if !ok {
		return session.Session{}, errs.NewObjectNotFoundError("token", token)
	}
	return sess, nil
}

// Delete removes a session. Unknown tokens are a no-op.
func (s *InMemorySessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// DeleteExpired removes all sessions expired at the given instant and
// returns how many were removed.
func (s *InMemorySessionStore) DeleteExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for token, sess := range s.sessions {
		if sess.IsExpired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

// Len reports how many sessions are currently stored.
func (s *InMemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
