package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// SessionUserKey is the session field holding the signed-in user id.
	SessionUserKey = "user_id"
	// UserIDKey is the gin context key for the acting user id.
	UserIDKey = "user_id"
)

// AuthRequired rejects requests without a signed-in session and exposes the
// acting user id to handlers under UserIDKey.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(SessionUserKey).(string)
		if !ok || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
				"code":  "UNAUTHORIZED",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID returns the id stored by AuthRequired, or "".
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// SignIn starts a session for userID.
func SignIn(c *gin.Context, userID string) error {
	session := sessions.Default(c)
	session.Clear()
	session.Set(SessionUserKey, userID)
	return session.Save()
}

// SignOut drops the session and expires the cookie.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// SessionUserID reads the session without requiring one.
func SessionUserID(c *gin.Context) string {
	userID, _ := sessions.Default(c).Get(SessionUserKey).(string)
	return userID
}
