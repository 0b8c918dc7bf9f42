package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"sketchroom/internal/room"
	"sketchroom/internal/session"
	"sketchroom/internal/store"
)

// CreateRoomHandler allocates a new room, joins the caller as its first
// player (the drawer) and issues a session cookie binding them to it.
//
// @Summary Create new room
// @Description Create a room and join it as the first player
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /api/rooms [post]
func CreateRoomHandler(reg *room.Registry, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username required"})
			return
		}
		code, rm := reg.Create()
		rm.Join(req.Username)
		token := sessions.Put(session.Player{Username: req.Username, Room: code})
		setSessionCookie(c, token)
		log.Info().Str("player", req.Username).Uint32("room", code).Msg("player created room")
		c.JSON(http.StatusOK, gin.H{"room_code": code})
	}
}

// JoinRoomHandler joins an existing room by code and issues a session
// cookie. Joining is idempotent by username.
//
// @Summary Join a room
// @Description Join an existing room by its numeric code
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Player and room info"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/rooms/join [post]
func JoinRoomHandler(reg *room.Registry, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.Username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and room_code required"})
			return
		}
		rm, ok := reg.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if _, err := rm.Join(req.Username); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		token := sessions.Put(session.Player{Username: req.Username, Room: req.RoomCode})
		setSessionCookie(c, token)
		log.Info().Str("player", req.Username).Uint32("room", req.RoomCode).Msg("player joined room")
		c.JSON(http.StatusOK, gin.H{"room_code": req.RoomCode})
	}
}

// LeaveRoomHandler removes the caller from their room, tears the room down
// when it empties and ends the session.
//
// @Summary Leave the current room
// @Description Remove the caller from their room and end the session
// @Tags Room
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/leave [post]
func LeaveRoomHandler(reg *room.Registry, sessions *session.Store, limiters *chatLimiters) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPlayer(c)
		removed, err := reg.Leave(p.Room, p.Username)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		token := currentToken(c)
		sessions.Delete(token)
		limiters.forget(token)
		clearSessionCookie(c)
		log.Info().Str("player", p.Username).Uint32("room", p.Room).Bool("room_removed", removed).Msg("player left room")
		c.JSON(http.StatusOK, gin.H{"room_removed": removed})
	}
}

// SetPixelHandler paints one canvas cell. The pixel index is validated here,
// before the core is called; the core treats an out-of-range index as a bug.
//
// @Summary Paint one pixel
// @Description Set a canvas cell to a named color
// @Tags Canvas
// @Accept json
// @Produce json
// @Param request body http.SetPixelRequest true "Pixel index and color"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/pixel [post]
func SetPixelHandler(reg *room.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPlayer(c)
		rm, ok := reg.Get(p.Room)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		var req SetPixelRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pixel_id and color required"})
			return
		}
		if !req.Color.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown color"})
			return
		}
		if *req.PixelID < 0 || *req.PixelID >= rm.CanvasSize() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pixel_id out of range"})
			return
		}
		rm.SetPixel(*req.PixelID, req.Color)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// ClearCanvasHandler wipes the caller's room canvas.
//
// @Summary Clear the canvas
// @Description Reset every cell of the room canvas to white
// @Tags Canvas
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/clear [post]
func ClearCanvasHandler(reg *room.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPlayer(c)
		rm, ok := reg.Get(p.Room)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		rm.ClearCanvas()
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// ChatHandler relays a chat message into the caller's room. Correct guesses
// advance the round inside the core.
//
// @Summary Post a chat message
// @Description Send a message to the room; a correct guess starts the next round
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body http.ChatRequest true "Message text"
// @Success 200 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Router /api/chat [post]
func ChatHandler(reg *room.Registry, limiters *chatLimiters) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPlayer(c)
		rm, ok := reg.Get(p.Room)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		var req ChatRequest
		if err := c.BindJSON(&req); err != nil || req.Text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
			return
		}
		if !limiters.allow(currentToken(c)) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "slow down"})
			return
		}
		if err := rm.PostChat(p.Username, req.Text); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "not in room"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// GameHandler returns a one-shot game snapshot, masked the same way the game
// stream masks it.
//
// @Summary Get game snapshot
// @Description Room code, prompt (masked unless caller is the drawer) and roster
// @Tags Game
// @Produce json
// @Success 200 {object} shared.GameInfo
// @Router /api/game [get]
func GameHandler(reg *room.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPlayer(c)
		rm, ok := reg.Get(p.Room)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, rm.GameInfo(p.Room, p.Username))
	}
}

// SaveCanvasHandler stores the room's current canvas in the gallery under
// the caller's name.
//
// @Summary Save the canvas to the gallery
// @Description Persist the room's current drawing under the caller's name
// @Tags Gallery
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/gallery [post]
func SaveCanvasHandler(reg *room.Registry, gallery *store.Gallery) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPlayer(c)
		rm, ok := reg.Get(p.Room)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		id, err := gallery.SaveCanvas(p.Username, rm.Prompt(), rm.CanvasSnapshot())
		if err != nil {
			log.Error().Err(err).Msg("save canvas")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save canvas"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}

// GalleryHandler lists saved drawings, newest first.
//
// @Summary List saved drawings
// @Description Saved gallery entries, newest first
// @Tags Gallery
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} map[string]interface{}
// @Router /api/gallery [get]
func GalleryHandler(gallery *store.Gallery) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
		entries, err := gallery.ListCanvases(limit)
		if err != nil {
			log.Error().Err(err).Msg("list gallery")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list gallery"})
			return
		}
		if entries == nil {
			entries = []store.Entry{}
		}
		c.JSON(http.StatusOK, gin.H{"entries": entries})
	}
}
