package selection

import (
	"context"
	"sync"
	"time"
)

const (
	defaultIdleTTL     = 30 * time.Minute
	defaultMaxSessions = 10000
)

// Store keeps one Controller per browser session. Sessions end after IdleTTL
// without a request, or earlier when the store is full and the session is the
// least recently used one.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*session
	defaultID   string
	idleTTL     time.Duration
	maxSessions int
	now         func() time.Time
	observers   []Observer
	onCount     func(int)
}

type session struct {
	controller *Controller
	lastSeen   time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIdleTTL sets how long an untouched session is kept.
func WithIdleTTL(ttl time.Duration) StoreOption {
	return func(s *Store) {
		if ttl > 0 {
			s.idleTTL = ttl
		}
	}
}

// WithMaxSessions bounds the number of live sessions.
func WithMaxSessions(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.maxSessions = n
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithObserver attaches observer to every controller the store creates.
func WithObserver(observer Observer) StoreOption {
	return func(s *Store) {
		if observer != nil {
			s.observers = append(s.observers, observer)
		}
	}
}

// WithSessionCountHook is called with the live session count whenever it
// changes.
func WithSessionCountHook(hook func(int)) StoreOption {
	return func(s *Store) {
		s.onCount = hook
	}
}

// NewStore builds a store whose new sessions start with defaultID expanded.
func NewStore(defaultID string, opts ...StoreOption) *Store {
	s := &Store{
		sessions:    make(map[string]*session),
		defaultID:   defaultID,
		idleTTL:     defaultIdleTTL,
		maxSessions: defaultMaxSessions,
		now:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// DefaultID returns the venture new sessions start with.
func (s *Store) DefaultID() string {
	return s.defaultID
}

// Controller returns the session's controller, creating it on first use.
func (s *Store) Controller(sessionID string) *Controller {
	s.mu.Lock()
	now := s.now()
	if existing, ok := s.sessions[sessionID]; ok && !s.expired(existing, now) {
		existing.lastSeen = now
		s.mu.Unlock()
		return existing.controller
	}
	if len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	created := &session{
		controller: NewController(s.defaultID, s.observers...),
		lastSeen:   now,
	}
	s.sessions[sessionID] = created
	count := len(s.sessions)
	s.mu.Unlock()

	s.reportCount(count)
	return created.controller
}

// Lookup returns a live session's controller without creating one. A hit
// counts as activity for idle expiry.
func (s *Store) Lookup(sessionID string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	existing, ok := s.sessions[sessionID]
	if !ok || s.expired(existing, now) {
		return nil, false
	}
	existing.lastSeen = now
	return existing.controller, true
}

// End discards a session.
func (s *Store) End(sessionID string) {
	s.mu.Lock()
	_, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	count := len(s.sessions)
	s.mu.Unlock()
	if ok {
		s.reportCount(count)
	}
}

// Len returns the number of tracked sessions, including expired ones not yet
// swept.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	now := s.now()
	removed := 0
	for id, existing := range s.sessions {
		if s.expired(existing, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	count := len(s.sessions)
	s.mu.Unlock()
	if removed > 0 {
		s.reportCount(count)
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) expired(existing *session, now time.Time) bool {
	return now.Sub(existing.lastSeen) > s.idleTTL
}

func (s *Store) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
		found    bool
	)
	for id, existing := range s.sessions {
		if !found || existing.lastSeen.Before(oldest) {
			oldestID, oldest, found = id, existing.lastSeen, true
		}
	}
	if found {
		delete(s.sessions, oldestID)
	}
}

func (s *Store) reportCount(count int) {
	if s.onCount != nil {
		s.onCount(count)
	}
}
