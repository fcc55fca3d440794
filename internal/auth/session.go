package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an explicit authenticated-state value handed to the
// components that need it, replacing an ambient process-wide flag.
// Nothing survives a process restart.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its deadline.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Sessions issues and validates in-memory sessions against a Verifier.
type Sessions struct {
	verifier Verifier
	ttl      time.Duration

	mu     sync.Mutex
	active map[string]Session
	now    func() time.Time
}

// NewSessions creates a session manager. A non-positive ttl falls back to
// one hour.
func NewSessions(verifier Verifier, ttl time.Duration) *Sessions {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Sessions{
		verifier: verifier,
		ttl:      ttl,
		active:   make(map[string]Session),
		now:      time.Now,
	}
}

// Login verifies the credential pair and issues a session on success.
// On failure it returns ErrInvalidCredentials; the caller surfaces
// MsgBadCredentials and allows retry.
func (s *Sessions) Login(ctx context.Context, username, password string) (Session, error) {
	if err := s.verifier.Verify(ctx, username, password); err != nil {
		return Session{}, err
	}

	session := Session{
		Token:    uuid.NewString(),
		Username: username,
	}

	s.mu.Lock()
	session.ExpiresAt = s.now().Add(s.ttl)
	s.active[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

// Authenticated reports whether the token belongs to a live session.
// Expired sessions are dropped on sight.
func (s *Sessions) Authenticated(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.active[token]
	if !ok {
		return false
	}
	if session.Expired(s.now()) {
		delete(s.active, token)
		return false
	}
	return true
}

// Logout drops the session. Unknown tokens are a no-op.
func (s *Sessions) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, token)
}
