package config

import (
	"fmt"
	"os"
	"strconv"

	"sketchroom/internal/game"
)

type Config struct {
	HTTPAddr      string
	CanvasWidth   int
	CanvasHeight  int
	GalleryDB     string
	ChatPerMinute int
	ChatBurst     int
	LogLevel      string
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		HTTPAddr:      getenvStr("HTTP_ADDR", ":3000"),
		CanvasWidth:   getenvInt("CANVAS_WIDTH", game.DefaultCanvasWidth),
		CanvasHeight:  getenvInt("CANVAS_HEIGHT", game.DefaultCanvasHeight),
		GalleryDB:     getenvStr("GALLERY_DB", "gallery.db"),
		ChatPerMinute: getenvInt("CHAT_PER_MINUTE", 60),
		ChatBurst:     getenvInt("CHAT_BURST", 10),
		LogLevel:      getenvStr("LOG_LEVEL", "info"),
	}
}

// Validate rejects configurations the game cannot run under. A word list
// with fewer than two entries would make prompt resampling spin forever, so
// it is refused at startup rather than handled at runtime.
func (c Config) Validate() error {
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if len(game.Words) < 2 {
		return fmt.Errorf("word list needs at least 2 entries, got %d", len(game.Words))
	}
	if c.ChatPerMinute <= 0 || c.ChatBurst <= 0 {
		return fmt.Errorf("chat rate limit must be positive, got %d/min burst %d", c.ChatPerMinute, c.ChatBurst)
	}
	return nil
}
