package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session resolves the conversation key for the caller: X-Session-ID header,
// then the session cookie, else a fresh uuid which is written back as a cookie.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderSessionID)
		if id == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				id = cookie
			}
		}
		if id == "" || len(id) > maxSessionIDLength {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(sessionCookieTTL.Seconds()),
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionKey, id)
		c.Header(HeaderSessionID, id)
		c.Next()
	}
}

// SessionID returns the id resolved by Session, or "".
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
