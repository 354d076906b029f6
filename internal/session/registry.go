// Package session tracks live dialogue sessions for a host process.
// Turns within one session are strictly sequential, serialized by a
// per-session mutex, while different sessions
// proceed concurrently and share only the engine's stores.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/movie-booking-assistant/internal/dialogue"
)

// Session pairs a dialogue context with the lock that serializes its
// turns and the timestamp the idle sweep uses.
type Session struct {
	mu         sync.Mutex
	ctx        *dialogue.Context
	lastActive time.Time
}

// Registry owns all live sessions.  Sessions are created on first
// use and removed by Remove or the idle sweep.
type Registry struct {
	mu       sync.RWMutex
	engine   *dialogue.Engine
	sessions map[string]*Session
}

// NewRegistry returns a registry dispatching turns to the engine.
func NewRegistry(engine *dialogue.Engine) *Registry {
	return &Registry{engine: engine, sessions: make(map[string]*Session)}
}

// HandleTurn runs one turn for the session, creating it on first
// contact.  The per-session lock is held for the whole turn, so a
// client that pipelines requests still gets them applied one at a
// time in arrival order.  No inventory lock is held while waiting
// here; seat atomicity lives entirely inside the store.
func (r *Registry) HandleTurn(ctx context.Context, sessionID, input string) (reply string, state dialogue.State) {
	s := r.acquire(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	reply = r.engine.HandleTurn(ctx, s.ctx, input)
	s.lastActive = time.Now()
	return reply, s.ctx.State
}

// Snapshot returns the read-only view of a session, and false when
// the session does not exist.  It never creates a session.
func (r *Registry) Snapshot(sessionID string) (dialogue.View, bool) {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok {
		return dialogue.View{}, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx.Snapshot(), true
}

// Remove drops a session.  Because seats are only reserved at
// explicit confirmation, dropping a session mid-flow cannot leak
// inventory holds.  Returns false when the session did not exist.
func (r *Registry) Remove(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; !ok {
		return false
	}
	delete(r.sessions, sessionID)
	return true
}

// ExpireIdle removes every session idle for longer than maxIdle and
// returns how many were dropped.  Hosts decide the policy; calling
// this is optional.
func (r *Registry) ExpireIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// acquire returns the session, creating it in the greeting state on
// first contact.
func (r *Registry) acquire(sessionID string) *Session {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if ok {
		return s
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok = r.sessions[sessionID]; ok {
		return s
	}
	s = &Session{ctx: dialogue.NewContext(sessionID), lastActive: time.Now()}
	r.sessions[sessionID] = s
	return s
}
