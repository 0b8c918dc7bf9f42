package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sketchroom/internal/api/ws"
	"sketchroom/internal/config"
	"sketchroom/internal/room"
	"sketchroom/internal/session"
	"sketchroom/internal/store"
)

func NewRouter(cfg config.Config, reg *room.Registry, sessions *session.Store, gallery *store.Gallery) *gin.Engine {
	r := gin.Default()
	limiters := newChatLimiters(cfg.ChatPerMinute, cfg.ChatBurst)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- PUBLIC ENDPOINTS ---
	r.POST("/api/rooms", CreateRoomHandler(reg, sessions))
	r.POST("/api/rooms/join", JoinRoomHandler(reg, sessions))
	r.GET("/api/gallery", GalleryHandler(gallery))

	// --- SESSION-BOUND ENDPOINTS ---
	auth := r.Group("/", SessionMiddleware(sessions))
	auth.POST("/api/leave", LeaveRoomHandler(reg, sessions, limiters))
	auth.POST("/api/pixel", SetPixelHandler(reg))
	auth.POST("/api/clear", ClearCanvasHandler(reg))
	auth.POST("/api/chat", ChatHandler(reg, limiters))
	auth.GET("/api/game", GameHandler(reg))
	auth.POST("/api/gallery", SaveCanvasHandler(reg, gallery))

	// --- LIVE STREAMS ---
	auth.GET("/ws/canvas", ws.CanvasStreamHandler(reg))
	auth.GET("/ws/game", ws.GameStreamHandler(reg))
	auth.GET("/ws/chat", ws.ChatStreamHandler(reg))

	return r
}
