package session

import (
	"sync"

	"github.com/google/uuid"
)

// ContextKey is where the HTTP layer stashes the resolved Player on the
// request context.
const ContextKey = "session_player"

// Player is the resolved identity behind one session cookie: who they are
// and which room they belong to.
type Player struct {
	Username string `json:"username"`
	Room     uint32 `json:"room"`
}

// Store keeps active sessions in memory, keyed by opaque token. Sessions do
// not survive a restart, same as the rooms they point into.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Player
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Player)}
}

// Put registers a session and returns its token.
func (s *Store) Put(p Player) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = p
	s.mu.Unlock()
	return token
}

// Get resolves a token.
func (s *Store) Get(token string) (Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.sessions[token]
	return p, ok
}

// Delete forgets a session. Unknown tokens are a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
