package core

// sessions.go keeps one live grid per rendered view.
//
// A session owns its grid's sort and filter state between requests. Sessions
// are keyed by a random UUID, bound to the user that opened them, and dropped
// once idle for longer than the TTL. The store is capacity-bounded; when full,
// expired sessions are swept before a new one is rejected.

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/auctionboard/internal/metrics"
)

// DefaultSessionTTL is how long an idle session survives.
const DefaultSessionTTL = 30 * time.Minute

// DefaultMaxSessions bounds the number of concurrent sessions.
const DefaultMaxSessions = 1000

type session struct {
	ID     string
	View   string
	UserID int64

	mu       sync.Mutex
	grid     Grid
	lastUsed time.Time
}

// Sessions is a TTL-bounded store of view sessions. It is safe for
// concurrent use.
type Sessions struct {
	ttl time.Duration
	max int
	now func() time.Time

	mu    sync.Mutex
	items map[string]*session
}

// NewSessions creates a store. Non-positive arguments select the defaults.
func NewSessions(ttl time.Duration, max int) *Sessions {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &Sessions{
		ttl:   ttl,
		max:   max,
		now:   time.Now,
		items: make(map[string]*session),
	}
}

// add stores a new session for grid and returns it.
func (s *Sessions) add(view string, userID int64, grid Grid) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) >= s.max {
		s.sweepLocked()
	}
	if len(s.items) >= s.max {
		return nil, ErrTooManySessions
	}

	sess := &session{
		ID:       uuid.NewString(),
		View:     view,
		UserID:   userID,
		grid:     grid,
		lastUsed: s.now(),
	}
	s.items[sess.ID] = sess
	metrics.SetActiveSessions(len(s.items))
	return sess, nil
}

// get returns the session owned by userID and marks it used. Expired
// sessions are removed and reported as not found.
func (s *Sessions) get(id string, userID int64) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok || sess.UserID != userID {
		return nil, ErrSessionNotFound
	}

	now := s.now()
	if now.Sub(sess.lastUsed) > s.ttl {
		delete(s.items, id)
		metrics.AddExpiredSessions(1)
		metrics.SetActiveSessions(len(s.items))
		return nil, ErrSessionNotFound
	}

	sess.lastUsed = now
	return sess, nil
}

// remove deletes the session owned by userID.
func (s *Sessions) remove(id string, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok || sess.UserID != userID {
		return ErrSessionNotFound
	}
	delete(s.items, id)
	metrics.SetActiveSessions(len(s.items))
	return nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Sessions) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *Sessions) sweepLocked() int {
	now := s.now()
	removed := 0
	for id, sess := range s.items {
		if now.Sub(sess.lastUsed) > s.ttl {
			delete(s.items, id)
			removed++
		}
	}
	metrics.AddExpiredSessions(removed)
	metrics.SetActiveSessions(len(s.items))
	return removed
}

// Len returns the number of stored sessions, including expired ones not yet
// swept.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// RunSweeper sweeps every interval until ctx is cancelled. onSweep, if set,
// is called with the number of sessions removed by each non-empty sweep.
func (s *Sessions) RunSweeper(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
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
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
