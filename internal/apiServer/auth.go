package apiServer

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	msgNoKey      = "No Api Key"
	msgInvalidKey = "Invalid API Key"
)

// requireKey aborts before any handler runs when the pre-shared key is
// absent or wrong.
func (s *Server) requireKey(c *gin.Context) { // A
	key := c.GetHeader(HeaderAPIKey)
	if key == "" {
		s.log.Warn("control request without key",
			"path", c.Request.URL.Path,
			"remote", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: msgNoKey})
		return
	}
	if s.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) != 1 {
		s.log.Warn("control request with invalid key",
			"path", c.Request.URL.Path,
			"remote", c.ClientIP())
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: msgInvalidKey})
		return
	}
	c.Next()
}
