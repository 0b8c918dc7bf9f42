package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"sketchroom/internal/room"
	"sketchroom/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// resolve maps the request's session onto a live room, or answers 404.
func resolve(c *gin.Context, reg *room.Registry) (session.Player, *room.Room, bool) {
	p := c.MustGet(session.ContextKey).(session.Player)
	rm, ok := reg.Get(p.Room)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return p, nil, false
	}
	return p, rm, true
}

// CanvasStreamHandler feeds one client the full canvas: a snapshot on
// connect, then a fresh snapshot after every canvas change. The loop runs
// until a write fails (the client is gone) or the notification channel
// closes (the room was torn down). Connecting also joins the room
// (idempotently).
func CanvasStreamHandler(reg *room.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, rm, ok := resolve(c, reg)
		if !ok {
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Debug().Err(err).Msg("canvas stream upgrade failed")
			return
		}
		defer conn.Close()

		if _, err := rm.Join(p.Username); err != nil {
			return
		}

		notify, cancel := rm.CanvasChanged()
		defer cancel()
		for {
			if err := conn.WriteJSON(rm.CanvasSnapshot()); err != nil {
				log.Debug().Err(err).Str("player", p.Username).Msg("canvas stream closed")
				return
			}
			if _, open := <-notify; !open {
				return
			}
		}
	}
}

// GameStreamHandler feeds one client the game info: room code, prompt and
// roster. The prompt is masked unless this client is the drawer, so guessers
// only ever see the word shape. Same push-on-wake loop as the canvas stream.
func GameStreamHandler(reg *room.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, rm, ok := resolve(c, reg)
		if !ok {
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Debug().Err(err).Msg("game stream upgrade failed")
			return
		}
		defer conn.Close()

		if _, err := rm.Join(p.Username); err != nil {
			return
		}

		notify, cancel := rm.GameChanged()
		defer cancel()
		for {
			if err := conn.WriteJSON(rm.GameInfo(p.Room, p.Username)); err != nil {
				log.Debug().Err(err).Str("player", p.Username).Msg("game stream closed")
				return
			}
			if _, open := <-notify; !open {
				return
			}
		}
	}
}

// ChatStreamHandler relays chat messages to one client. There is no snapshot
// to push, only whatever arrives after connect; a known player's arrival is
// announced to the room first.
func ChatStreamHandler(reg *room.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, rm, ok := resolve(c, reg)
		if !ok {
			return
		}
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Debug().Err(err).Msg("chat stream upgrade failed")
			return
		}
		defer conn.Close()

		msgs, cancel := rm.Chat()
		defer cancel()
		if rm.HasPlayer(p.Username) {
			rm.AnnounceJoin(p.Username)
		}
		for msg := range msgs {
			if err := conn.WriteJSON(msg); err != nil {
				log.Debug().Err(err).Str("player", p.Username).Msg("chat stream closed")
				return
			}
		}
	}
}
