package game

import (
	"math/rand"
	"strings"
)

// Player is one roster entry. Two players are the same player when their
// usernames match, regardless of the Active flag.
type Player struct {
	Username string `json:"username"`
	Active   bool   `json:"active"`
}

// Is reports whether p and other name the same player.
func (p Player) Is(other Player) bool {
	return p.Username == other.Username
}

// State is the full mutable state of one room: the secret prompt, the shared
// canvas and the roster. Join order is turn order, and at most one player is
// active (drawing) while the roster is non-empty.
type State struct {
	Prompt  string
	Canvas  Canvas
	Players []Player
}

func NewState(width, height int) *State {
	return &State{
		Prompt: RandomPrompt(""),
		Canvas: NewCanvas(width, height),
	}
}

// RandomPrompt draws a lowercased word from the word list. When exclude is
// non-empty the draw is repeated until a different word comes up, which is
// why the list must hold at least two entries.
func RandomPrompt(exclude string) string {
	for {
		w := strings.ToLower(Words[rand.Intn(len(Words))])
		if w != exclude {
			return w
		}
	}
}

// AddPlayer appends player to the roster and reports whether it was added.
// A player with the same username already present leaves the roster
// untouched. The first player to join an empty roster starts as the drawer.
func (s *State) AddPlayer(player Player) bool {
	for _, p := range s.Players {
		if p.Is(player) {
			return false
		}
	}
	player.Active = len(s.Players) == 0
	s.Players = append(s.Players, player)
	return true
}

// RemovePlayer deletes the named player from the roster and reports whether
// they were the drawer, in which case the caller should advance the round.
// Removing an unknown player is a no-op and reports false.
func (s *State) RemovePlayer(username string) bool {
	for i, p := range s.Players {
		if p.Username == username {
			s.Players = append(s.Players[:i], s.Players[i+1:]...)
			return p.Active
		}
	}
	return false
}

// Drawer returns the active player, if any.
func (s *State) Drawer() (Player, bool) {
	for _, p := range s.Players {
		if p.Active {
			return p, true
		}
	}
	return Player{}, false
}

// NewRound starts the next drawing round: the canvas is wiped, a fresh
// prompt is drawn and the drawer role moves to the next player in join
// order. With no active player marked the role falls to the first entry.
func (s *State) NewRound() {
	s.Canvas.Clear()
	s.Prompt = RandomPrompt(s.Prompt)
	if len(s.Players) == 0 {
		return
	}
	next := 0
	for i := range s.Players {
		if s.Players[i].Active {
			s.Players[i].Active = false
			next = (i + 1) % len(s.Players)
			break
		}
	}
	s.Players[next].Active = true
}
