package room

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchroom/internal/game"
)

func TestJoinNotifiesGameSubscribers(t *testing.T) {
	r := New(4, 4)
	notify, cancel := r.GameChanged()
	defer cancel()

	added, err := r.Join("ann")
	require.NoError(t, err)
	require.True(t, added)
	assert.Len(t, notify, 1)

	added, err = r.Join("ann")
	require.NoError(t, err)
	require.False(t, added, "rejoin under the same name changes nothing")
	assert.Len(t, notify, 1, "no notification for an idempotent join")
}

func TestJoinClosedRoomRejected(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	require.Equal(t, 0, r.Leave("ann"), "last leaver empties the room")

	added, err := r.Join("bo")
	assert.ErrorIs(t, err, ErrNotFound, "an emptied room accepts no joins")
	assert.False(t, added)
}

func TestLeaveAnnouncesDeparture(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	r.Join("bo")
	msgs, cancel := r.Chat()
	defer cancel()

	r.Leave("bo")
	notice := <-msgs
	assert.Equal(t, systemUsername, notice.Username)
	assert.Equal(t, "bo left", notice.Text)
}

func TestCloseWakesSubscribers(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	canvasNotify, cancelCanvas := r.CanvasChanged()
	defer cancelCanvas()
	msgs, cancelChat := r.Chat()
	defer cancelChat()

	r.Close()

	_, open := <-canvasNotify
	assert.False(t, open, "canvas subscriber sees a closed channel")
	_, open = <-msgs
	assert.False(t, open, "chat subscriber sees a closed channel")
}

func TestSetPixelNotifiesCanvasSubscribers(t *testing.T) {
	r := New(4, 4)
	notify, cancel := r.CanvasChanged()
	defer cancel()

	r.SetPixel(3, game.Black)
	assert.Len(t, notify, 1)
	assert.Equal(t, game.Black, r.CanvasSnapshot().Grid[3])

	r.ClearCanvas()
	assert.Len(t, notify, 2)
	assert.Equal(t, game.DefaultColor, r.CanvasSnapshot().Grid[3])
}

func TestGameInfoMasksPromptForGuessers(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	r.Join("bo")

	drawerView := r.GameInfo(42, "ann")
	assert.Equal(t, r.Prompt(), drawerView.Prompt)
	assert.EqualValues(t, 42, drawerView.RoomID)

	guesserView := r.GameInfo(42, "bo")
	assert.Equal(t, game.MaskPrompt(r.Prompt()), guesserView.Prompt)
	assert.NotContains(t, guesserView.Prompt, r.Prompt()[:1],
		"no letter of the word leaks to a guesser")
	require.Len(t, guesserView.Players, 2)
	assert.True(t, guesserView.Players[0].Active)
}

func TestPostChatRejectsStrangers(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	assert.ErrorIs(t, r.PostChat("stranger", "hi"), ErrNotInRoom)
}

func TestPostChatRelaysMessage(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	msgs, cancel := r.Chat()
	defer cancel()

	require.NoError(t, r.PostChat("ann", "is it a carrot?"))
	msg := <-msgs
	assert.Equal(t, "ann", msg.Username)
	assert.Equal(t, "is it a carrot?", msg.Text)
}

func TestCorrectGuessAdvancesRound(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	r.Join("bo")
	r.SetPixel(0, game.Black)

	prompt := r.Prompt()
	canvasNotify, cancelCanvas := r.CanvasChanged()
	defer cancelCanvas()
	gameNotify, cancelGame := r.GameChanged()
	defer cancelGame()
	msgs, cancelChat := r.Chat()
	defer cancelChat()

	// Whitespace and case differences still count as a correct guess.
	require.NoError(t, r.PostChat("bo", "  "+strings.ToUpper(prompt)+" "))

	assert.NotEqual(t, prompt, r.Prompt())
	for _, cell := range r.CanvasSnapshot().Grid {
		assert.Equal(t, game.DefaultColor, cell)
	}

	info := r.GameInfo(1, "bo")
	require.Len(t, info.Players, 2)
	assert.False(t, info.Players[0].Active)
	assert.True(t, info.Players[1].Active, "the turn rotates to bo")

	assert.Len(t, canvasNotify, 1, "exactly one canvas push per round advance")
	assert.Len(t, gameNotify, 1, "exactly one game push per round advance")

	relay := <-msgs
	assert.Equal(t, "bo", relay.Username)
	announce := <-msgs
	assert.Equal(t, systemUsername, announce.Username)
	assert.Equal(t, "bo guessed the right word!", announce.Text)
}

func TestWrongGuessChangesNothing(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	prompt := r.Prompt()
	canvasNotify, cancel := r.CanvasChanged()
	defer cancel()

	require.NoError(t, r.PostChat("ann", "definitely not the word"))

	assert.Equal(t, prompt, r.Prompt())
	assert.Empty(t, canvasNotify)
	assert.True(t, r.GameInfo(1, "ann").Players[0].Active)
}

func TestLeaveDrawerAdvancesRound(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	r.Join("bo")

	remaining := r.Leave("ann")
	assert.Equal(t, 1, remaining)

	info := r.GameInfo(1, "bo")
	require.Len(t, info.Players, 1)
	assert.Equal(t, "bo", info.Players[0].Username)
	assert.True(t, info.Players[0].Active, "the drawer role never goes vacant")
}

func TestLeaveGuesserKeepsDrawer(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	r.Join("bo")
	prompt := r.Prompt()

	assert.Equal(t, 1, r.Leave("bo"))
	assert.Equal(t, prompt, r.Prompt(), "no round advance for a guesser leaving")

	d := r.GameInfo(1, "ann")
	assert.True(t, d.Players[0].Active)
}

func TestLeaveUnknownPlayerIsQuiet(t *testing.T) {
	r := New(4, 4)
	r.Join("ann")
	notify, cancel := r.GameChanged()
	defer cancel()

	assert.Equal(t, 1, r.Leave("ghost"))
	assert.Empty(t, notify)
}
