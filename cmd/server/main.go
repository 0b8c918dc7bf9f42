package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpapi "sketchroom/internal/api/http"
	"sketchroom/internal/config"
	"sketchroom/internal/logger"
	"sketchroom/internal/room"
	"sketchroom/internal/session"
	"sketchroom/internal/store"

	// swagger packages
	_ "sketchroom/docs"
)

// @title Sketchroom API
// @version 1.0
// @description Room-based realtime drawing and guessing game (Go + Gin)
// @BasePath /
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	gallery, err := store.Open(cfg.GalleryDB)
	if err != nil {
		log.Fatal().Err(err).Msg("open gallery store")
	}
	defer gallery.Close()

	reg := room.NewRegistry(cfg.CanvasWidth, cfg.CanvasHeight)
	sessions := session.NewStore()
	r := httpapi.NewRouter(cfg, reg, sessions, gallery)

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
