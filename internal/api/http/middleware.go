package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sketchroom/internal/session"
)

// SessionCookie carries the opaque session token.
const SessionCookie = "sketchroom_session"

const tokenKey = "session_token"

// SessionMiddleware resolves the session cookie into the player identity and
// rejects unauthenticated requests. Downstream handlers read the player via
// CurrentPlayer.
func SessionMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		p, ok := sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown session"})
			return
		}
		c.Set(tokenKey, token)
		c.Set(session.ContextKey, p)
		c.Next()
	}
}

// CurrentPlayer returns the identity SessionMiddleware resolved for this
// request.
func CurrentPlayer(c *gin.Context) session.Player {
	return c.MustGet(session.ContextKey).(session.Player)
}

func currentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}
