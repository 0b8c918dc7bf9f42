package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"sketchroom/internal/game"
)

// Gallery persists finished drawings in sqlite. Live room state is never
// written here; only canvases a player explicitly saves.
type Gallery struct {
	db *sql.DB
}

// Entry is one saved drawing.
type Entry struct {
	ID        int64       `json:"id"`
	Author    string      `json:"author"`
	Prompt    string      `json:"prompt"`
	Canvas    game.Canvas `json:"canvas"`
	CreatedAt time.Time   `json:"created_at"`
}

// Open prepares the sqlite database at path and ensures the schema exists.
func Open(path string) (*Gallery, error) {
	if path == "" {
		return nil, errors.New("gallery database path is empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS canvases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		author TEXT NOT NULL,
		prompt TEXT NOT NULL,
		canvas TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Gallery{db: db}, nil
}

func (g *Gallery) Close() error {
	return g.db.Close()
}

// SaveCanvas stores one drawing and returns its id. The canvas is stored in
// its JSON wire form, so a listed entry round-trips to the exact grid.
func (g *Gallery) SaveCanvas(author, prompt string, canvas game.Canvas) (int64, error) {
	blob, err := json.Marshal(canvas)
	if err != nil {
		return 0, fmt.Errorf("encode canvas: %w", err)
	}
	res, err := g.db.Exec(
		`INSERT INTO canvases (author, prompt, canvas, created_at) VALUES (?, ?, ?, ?)`,
		author, prompt, string(blob), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert canvas: %w", err)
	}
	return res.LastInsertId()
}

// ListCanvases returns the most recently saved drawings, newest first.
func (g *Gallery) ListCanvases(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := g.db.Query(
		`SELECT id, author, prompt, canvas, created_at FROM canvases ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query canvases: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var blob string
		if err := rows.Scan(&e.ID, &e.Author, &e.Prompt, &blob, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan canvas: %w", err)
		}
		if err := json.Unmarshal([]byte(blob), &e.Canvas); err != nil {
			return nil, fmt.Errorf("decode canvas %d: %w", e.ID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
