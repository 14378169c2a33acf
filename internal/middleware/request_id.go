package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clainai/pkg/log"
)

// RequestID propagates or assigns a request id and stores it in the request
// context so every log line of the request carries it.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxSessionIDLength {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}
