// Package session keeps running games in process memory, keyed by an
// opaque id. It stands where a database repository would in a durable
// deployment; sessions vanish on restart.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/md-zeon/sweeper/internal/game"
)

// Session pairs one game with its id. Moves may arrive from plain HTTP
// handlers and a WebSocket loop at once, so every access to Game must go
// through Do.
type Session struct {
	ID        string
	Game      *game.Game
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	scored   bool
}

// Do runs fn with exclusive access to the session's game.
func (s *Session) Do(fn func(g *game.Game)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Game)
}

// FirstWin reports true exactly once, the first time it is called after
// the game was won. Callers use it to record a highscore without double
// counting wins observed from both the HTTP and the WebSocket path.
func (s *Session) FirstWin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scored || s.Game.Status() != game.StatusWon {
		return false
	}
	s.scored = true
	return true
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

func newSessionID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func (r *Registry) Create(g *game.Game) *Session {
	now := time.Now()
	s := &Session{
		ID:        newSessionID(),
		Game:      g,
		CreatedAt: now,
		lastSeen:  now,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
	return s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.mu.Lock()
		s.lastSeen = time.Now()
		s.mu.Unlock()
	}
	return s, ok
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the registry ttl. Blocks
// until ctx is done; run it on its own goroutine.
func (r *Registry) Sweep(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweepOnce(time.Now())
		}
	}
}

func (r *Registry) sweepOnce(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		s.mu.Lock()
		idle := now.Sub(s.lastSeen)
		s.mu.Unlock()
		if idle > r.ttl {
			delete(r.sessions, id)
		}
	}
}
