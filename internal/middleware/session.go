package middleware

import (
	"net/http"

	"drivethru/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the X-Session-ID header into the
// session's order and attaches both to the request context. Order
// routes cannot run without a session.
func SessionMiddleware(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Session-ID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing X-Session-ID header"})
			c.Abort()
			return
		}

		s, err := manager.Get(id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			c.Abort()
			return
		}

		c.Set("session", s)
		c.Set("order", s.Order)
		c.Next()
	}
}
