package room

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound  = errors.New("room not found")
	ErrNotInRoom = errors.New("player not in room")
)

// Registry maps room codes to live rooms. Codes are random 32-bit values;
// collisions are not checked, the space is large enough for the handful of
// rooms one process hosts. The registry's lock is distinct from any room's
// lock, so operations on different rooms never contend.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[uint32]*Room
	width  int
	height int
}

// NewRegistry creates an empty registry whose rooms use width x height
// canvases.
func NewRegistry(width, height int) *Registry {
	return &Registry{
		rooms:  make(map[uint32]*Room),
		width:  width,
		height: height,
	}
}

// Create allocates a fresh room under a random code.
func (g *Registry) Create() (uint32, *Room) {
	code := rand.Uint32()
	r := New(g.width, g.height)
	g.mu.Lock()
	g.rooms[code] = r
	g.mu.Unlock()
	log.Info().Uint32("room", code).Msg("room created")
	return code, r
}

// Get resolves a room code.
func (g *Registry) Get(code uint32) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.rooms[code]
	return r, ok
}

// Remove drops a room from the registry and closes it, waking any stream
// still parked on one of its topics.
func (g *Registry) Remove(code uint32) {
	g.mu.Lock()
	r, ok := g.rooms[code]
	delete(g.rooms, code)
	g.mu.Unlock()
	if ok {
		r.Close()
	}
	log.Info().Uint32("room", code).Msg("room removed")
}

// Leave removes the player from the room and garbage-collects the room once
// its roster empties. Reports whether the room was torn down. The room
// closes itself the moment its roster empties, so a join racing the last
// leaver is rejected even while the map entry still exists.
func (g *Registry) Leave(code uint32, username string) (bool, error) {
	r, ok := g.Get(code)
	if !ok {
		return false, ErrNotFound
	}
	if r.Leave(username) == 0 {
		g.Remove(code)
		return true, nil
	}
	return false, nil
}
