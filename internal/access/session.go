package access

import "time"

// DefaultSessionTTL is how long a successful PIN verification keeps the
// session unlocked.
const DefaultSessionTTL = 5 * time.Minute

// Session is the process-local lock state gating edit and delete. It starts
// locked; a successful verification unlocks it until the TTL elapses, Lock
// is called, or the process exits. Locked permits read and create only.
type Session struct {
	ttl        time.Duration
	unlocked   bool
	unlockedAt time.Time
	now        func() time.Time
}

// NewSession returns a locked session. A non-positive ttl falls back to
// DefaultSessionTTL.
func NewSession(ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Session{ttl: ttl, now: time.Now}
}

// Unlock verifies the PIN against the guard and unlocks the session on
// success. A wrong PIN returns an AuthError and leaves the session locked.
func (s *Session) Unlock(g *Guard, pin string) error {
	ok, err := g.Verify(pin)
	if err != nil {
		return err
	}
	if !ok {
		return &AuthError{Reason: "pin does not match"}
	}
	s.unlocked = true
	s.unlockedAt = s.now()
	return nil
}

// Lock relocks the session.
func (s *Session) Lock() {
	s.unlocked = false
}

// Unlocked reports whether edit/delete is currently permitted. An expired
// unlock relocks the session.
func (s *Session) Unlocked() bool {
	if !s.unlocked {
		return false
	}
	if s.now().Sub(s.unlockedAt) > s.ttl {
		s.unlocked = false
	}
	return s.unlocked
}
