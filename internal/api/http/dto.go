package http

import "sketchroom/internal/game"

// CreateRoomRequest is the payload for POST /api/rooms.
type CreateRoomRequest struct {
	Username string `json:"username"`
}

// JoinRoomRequest is the payload for POST /api/rooms/join.
type JoinRoomRequest struct {
	Username string `json:"username"`
	RoomCode uint32 `json:"room_code"`
}

// SetPixelRequest is the payload for POST /api/pixel.
type SetPixelRequest struct {
	PixelID *int       `json:"pixel_id" binding:"required"`
	Color   game.Color `json:"color" binding:"required"`
}

// ChatRequest is the payload for POST /api/chat.
type ChatRequest struct {
	Text string `json:"text"`
}
