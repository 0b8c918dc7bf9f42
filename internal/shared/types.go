package shared

import "sketchroom/internal/game"

// GameInfo is the game-stream payload: room code, prompt (masked for
// everyone but the drawer) and the roster in turn order.
type GameInfo struct {
	RoomID  uint32        `json:"room_id"`
	Prompt  string        `json:"prompt"`
	Players []game.Player `json:"players"`
}

// ChatMessage is relayed to chat subscribers as-is and never stored.
type ChatMessage struct {
	Username string `json:"username"`
	Text     string `json:"text"`
}
