package conversation

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// DefaultMaxSessions bounds the number of concurrently tracked users.
	DefaultMaxSessions = 4096

	// DefaultSessionTTL evicts sessions idle longer than this.
	DefaultSessionTTL = 30 * time.Minute
)

// Session wraps one user's context with the lock that serializes their turns.
type Session struct {
	mu  sync.Mutex
	ctx Context
}

// Snapshot returns a deep copy of the context. Callers must hold the session.
func (s *Session) Snapshot() Context {
	return s.ctx.Clone()
}

// Commit replaces the context. Callers must hold the session.
func (s *Session) Commit(c Context) {
	s.ctx = c
}

// Store owns the user-identity → Context mapping. The container is an
// expirable LRU so abandoned conversations age out instead of leaking.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Session]
}

// NewStore creates a context store. Zero values select the defaults.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Session](maxSessions, nil, ttl),
	}
}

// Acquire returns the user's session with its lock held, creating the session
// on first contact. The returned release function must be called on every
// exit path of the turn.
func (s *Store) Acquire(userID string) (*Session, func()) {
	s.mu.Lock()
	sess, ok := s.sessions.Get(userID)
	if !ok {
		sess = &Session{ctx: NewContext()}
		s.sessions.Add(userID, sess)
	}
	s.mu.Unlock()

	sess.mu.Lock()
	return sess, sess.mu.Unlock
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Len()
}
