// Package session holds the signed-in user's state for the lifetime of the
// program. It is passed explicitly to the screens that need it.
package session

import (
	"sync"
	"time"
)

// Session tracks who is signed in. Commands read the token from their own
// goroutines, so every accessor takes the lock.
type Session struct {
	mu        sync.RWMutex
	active    bool
	email     string
	token     string
	startedAt time.Time

	now func() time.Time
}

// New returns an inactive session.
func New() *Session {
	return &Session{now: time.Now}
}

// Begin marks the session active for email. token may be empty when the
// backend relies on cookies.
func (s *Session) Begin(email, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = true
	s.email = email
	s.token = token
	s.startedAt = s.now()
}

// Clear signs the user out locally.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = false
	s.email = ""
	s.token = ""
	s.startedAt = time.Time{}
}

// Active reports whether a user is signed in.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// Token returns the bearer token, or "" when none was issued.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// StartedAt returns when the current session began. Zero when inactive.
func (s *Session) StartedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startedAt
}
