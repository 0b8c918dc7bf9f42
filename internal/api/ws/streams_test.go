package ws_test

import (
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "sketchroom/internal/api/http"
	"sketchroom/internal/config"
	"sketchroom/internal/game"
	"sketchroom/internal/room"
	"sketchroom/internal/session"
	"sketchroom/internal/shared"
	"sketchroom/internal/store"
)

type streamFixture struct {
	srv      *httptest.Server
	reg      *room.Registry
	sessions *session.Store
}

func newStreamFixture(t *testing.T) *streamFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		CanvasWidth:   3,
		CanvasHeight:  3,
		ChatPerMinute: 600,
		ChatBurst:     100,
	}
	reg := room.NewRegistry(cfg.CanvasWidth, cfg.CanvasHeight)
	sessions := session.NewStore()
	gallery, err := store.Open(filepath.Join(t.TempDir(), "gallery.db"))
	require.NoError(t, err)
	t.Cleanup(func() { gallery.Close() })

	srv := httptest.NewServer(httpapi.NewRouter(cfg, reg, sessions, gallery))
	t.Cleanup(srv.Close)
	return &streamFixture{srv: srv, reg: reg, sessions: sessions}
}

// dial opens one stream as the given player.
func (f *streamFixture) dial(t *testing.T, path, username string, code uint32) *websocket.Conn {
	t.Helper()
	token := f.sessions.Put(session.Player{Username: username, Room: code})
	header := http.Header{}
	header.Add("Cookie", httpapi.SessionCookie+"="+token)
	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readJSON[T any](t *testing.T, conn *websocket.Conn) T {
	t.Helper()
	var v T
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&v))
	return v
}

func TestCanvasStreamPushesSnapshotOnChange(t *testing.T) {
	f := newStreamFixture(t)
	code, rm := f.reg.Create()

	conn := f.dial(t, "/ws/canvas", "ann", code)

	snap := readJSON[game.Canvas](t, conn)
	require.Len(t, snap.Grid, 9)
	assert.Equal(t, game.DefaultColor, snap.Grid[4])

	assert.True(t, rm.HasPlayer("ann"), "connecting joins the room")

	rm.SetPixel(4, game.Black)
	snap = readJSON[game.Canvas](t, conn)
	assert.Equal(t, game.Black, snap.Grid[4])
}

func TestGameStreamMasksPromptPerViewer(t *testing.T) {
	f := newStreamFixture(t)
	code, rm := f.reg.Create()

	annConn := f.dial(t, "/ws/game", "ann", code)
	annView := readJSON[shared.GameInfo](t, annConn)
	assert.Equal(t, rm.Prompt(), annView.Prompt, "first joiner draws and sees the word")
	require.Len(t, annView.Players, 1)
	assert.True(t, annView.Players[0].Active)

	boConn := f.dial(t, "/ws/game", "bo", code)
	boView := readJSON[shared.GameInfo](t, boConn)
	assert.Equal(t, game.MaskPrompt(rm.Prompt()), boView.Prompt)
	require.Len(t, boView.Players, 2)

	// Bo's join woke ann's stream with the refreshed roster.
	annView = readJSON[shared.GameInfo](t, annConn)
	require.Len(t, annView.Players, 2)
	assert.Equal(t, rm.Prompt(), annView.Prompt)
}

func TestChatStreamAnnouncesAndRelays(t *testing.T) {
	f := newStreamFixture(t)
	code, rm := f.reg.Create()
	rm.Join("ann")

	conn := f.dial(t, "/ws/chat", "ann", code)

	joined := readJSON[shared.ChatMessage](t, conn)
	assert.Equal(t, "ann joined", joined.Text)

	require.NoError(t, rm.PostChat("ann", "is it a leek?"))
	relay := readJSON[shared.ChatMessage](t, conn)
	assert.Equal(t, "ann", relay.Username)
	assert.Equal(t, "is it a leek?", relay.Text)
}

func TestCanvasStreamEndsWhenRoomTornDown(t *testing.T) {
	f := newStreamFixture(t)
	code, _ := f.reg.Create()

	conn := f.dial(t, "/ws/canvas", "ann", code)
	readJSON[game.Canvas](t, conn)

	// Tearing the room down must end the stream rather than leave its
	// goroutine parked waiting for a change that will never come.
	f.reg.Remove(code)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var v game.Canvas
	err := conn.ReadJSON(&v)
	require.Error(t, err)
	var ne net.Error
	if errors.As(err, &ne) {
		assert.False(t, ne.Timeout(), "stream closed by the server, not by the read deadline")
	}
}

func TestGameStreamEndsWhenLastPlayerLeaves(t *testing.T) {
	f := newStreamFixture(t)
	code, _ := f.reg.Create()

	conn := f.dial(t, "/ws/game", "ann", code)
	readJSON[shared.GameInfo](t, conn)

	removed, err := f.reg.Leave(code, "ann")
	require.NoError(t, err)
	require.True(t, removed)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for {
		var v shared.GameInfo
		if err := conn.ReadJSON(&v); err != nil {
			var ne net.Error
			if errors.As(err, &ne) {
				assert.False(t, ne.Timeout(), "stream closed by the server, not by the read deadline")
			}
			return
		}
	}
}

func TestStreamRejectsUnknownRoom(t *testing.T) {
	f := newStreamFixture(t)
	token := f.sessions.Put(session.Player{Username: "ann", Room: 999})
	header := http.Header{}
	header.Add("Cookie", httpapi.SessionCookie+"="+token)
	url := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/ws/canvas"

	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
