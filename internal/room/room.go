package room

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"sketchroom/internal/game"
	"sketchroom/internal/shared"
)

// systemUsername is the sender of synthesized chat messages (joins, correct
// guesses).
const systemUsername = "system"

// Room holds one game's state behind a read/write lock plus the notification
// topics that wake its stream subscribers. The lock is held only for the
// duration of a read or mutation, never across a network write; streams copy
// a snapshot out and push it unlocked.
type Room struct {
	mu     sync.RWMutex
	state  *game.State
	closed bool

	canvasChanged *Topic[struct{}]
	gameChanged   *Topic[struct{}]
	chat          *Topic[shared.ChatMessage]
}

func New(width, height int) *Room {
	return &Room{
		state:         game.NewState(width, height),
		canvasChanged: NewTopic[struct{}](),
		gameChanged:   NewTopic[struct{}](),
		chat:          NewTopic[shared.ChatMessage](),
	}
}

// Join adds the named player, reporting whether they were new. A genuinely
// new join is announced on the game topic so every roster view refreshes;
// re-joining under the same username changes nothing. A room that has been
// torn down rejects joins with ErrNotFound, so a player racing the last
// leaver cannot end up bound to a dead room.
func (r *Room) Join(username string) (bool, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false, ErrNotFound
	}
	added := r.state.AddPlayer(game.Player{Username: username})
	r.mu.Unlock()
	if added {
		r.gameChanged.Publish(struct{}{})
	}
	return added, nil
}

// Leave removes the named player and returns the remaining player count.
// When the drawer leaves a non-empty room the round advances so the drawing
// role never goes vacant. Emptying the roster closes the room in the same
// critical section, so no concurrent Join can slip in between the emptiness
// check and the teardown.
func (r *Room) Leave(username string) int {
	r.mu.Lock()
	before := len(r.state.Players)
	wasDrawer := r.state.RemovePlayer(username)
	removed := len(r.state.Players) != before
	if wasDrawer && len(r.state.Players) > 0 {
		r.state.NewRound()
	}
	remaining := len(r.state.Players)
	emptied := removed && remaining == 0
	if emptied {
		r.closed = true
	}
	r.mu.Unlock()
	if removed {
		r.chat.Publish(shared.ChatMessage{
			Username: systemUsername,
			Text:     username + " left",
		})
		r.gameChanged.Publish(struct{}{})
	}
	if wasDrawer {
		r.canvasChanged.Publish(struct{}{})
	}
	if emptied {
		r.closeTopics()
	}
	return remaining
}

// Close tears the room down: no further joins are accepted and every stream
// subscriber is woken with a closed channel instead of parking forever on a
// topic nobody will publish to again.
func (r *Room) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.closeTopics()
}

func (r *Room) closeTopics() {
	r.canvasChanged.Close()
	r.gameChanged.Close()
	r.chat.Close()
}

// HasPlayer reports whether the named player is on the roster.
func (r *Room) HasPlayer(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.state.Players {
		if p.Username == username {
			return true
		}
	}
	return false
}

// PlayerCount returns the roster size.
func (r *Room) PlayerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.state.Players)
}

// SetPixel paints one cell. The index must already be range-checked by the
// HTTP layer.
func (r *Room) SetPixel(i int, color game.Color) {
	r.mu.Lock()
	r.state.Canvas.SetPixel(i, color)
	r.mu.Unlock()
	r.canvasChanged.Publish(struct{}{})
}

// ClearCanvas wipes the canvas without touching prompt or roster.
func (r *Room) ClearCanvas() {
	r.mu.Lock()
	r.state.Canvas.Clear()
	r.mu.Unlock()
	r.canvasChanged.Publish(struct{}{})
}

// CanvasSize returns the pixel count, for request validation.
func (r *Room) CanvasSize() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.state.Canvas.Grid)
}

// CanvasSnapshot returns an independent copy of the current canvas.
func (r *Room) CanvasSnapshot() game.Canvas {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Canvas.Clone()
}

// Prompt returns the current prompt unmasked.
func (r *Room) Prompt() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Prompt
}

// GameInfo renders the game-stream payload for one viewer. Only the drawer
// sees the literal prompt; everyone else gets the masked form.
func (r *Room) GameInfo(roomID uint32, viewer string) shared.GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info := shared.GameInfo{
		RoomID:  roomID,
		Prompt:  game.MaskPrompt(r.state.Prompt),
		Players: append([]game.Player(nil), r.state.Players...),
	}
	if d, ok := r.state.Drawer(); ok && d.Username == viewer {
		info.Prompt = r.state.Prompt
	}
	return info
}

// PostChat relays a chat message and checks it against the prompt. A correct
// guess (case-insensitive, surrounding whitespace ignored) starts the next
// round, announces the guesser on the chat topic and wakes canvas and game
// subscribers for the reset. Only roster members may post.
func (r *Room) PostChat(username, text string) error {
	r.mu.Lock()
	member := false
	for _, p := range r.state.Players {
		if p.Username == username {
			member = true
			break
		}
	}
	if !member {
		r.mu.Unlock()
		return ErrNotInRoom
	}
	guessed := strings.ToLower(strings.TrimSpace(text)) == r.state.Prompt
	if guessed {
		r.state.NewRound()
	}
	r.mu.Unlock()

	r.chat.Publish(shared.ChatMessage{Username: username, Text: text})
	if guessed {
		log.Debug().Str("player", username).Msg("correct guess")
		r.chat.Publish(shared.ChatMessage{
			Username: systemUsername,
			Text:     username + " guessed the right word!",
		})
		r.canvasChanged.Publish(struct{}{})
		r.gameChanged.Publish(struct{}{})
	}
	return nil
}

// AnnounceJoin publishes the join notice the chat stream synthesizes for a
// known player.
func (r *Room) AnnounceJoin(username string) {
	r.chat.Publish(shared.ChatMessage{
		Username: systemUsername,
		Text:     username + " joined",
	})
}

// CanvasChanged subscribes to canvas change notifications.
func (r *Room) CanvasChanged() (<-chan struct{}, func()) {
	return r.canvasChanged.Subscribe()
}

// GameChanged subscribes to prompt/roster change notifications.
func (r *Room) GameChanged() (<-chan struct{}, func()) {
	return r.gameChanged.Subscribe()
}

// Chat subscribes to the chat message feed.
func (r *Room) Chat() (<-chan shared.ChatMessage, func()) {
	return r.chat.Subscribe()
}
