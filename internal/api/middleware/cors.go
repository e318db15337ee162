package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds the allowed origin for cross-origin requests
type CORSConfig struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin
	AllowOrigin string
}

// DefaultCORSConfig allows any origin. The read API is public; this can
// be tightened to the frontend origin via configuration later.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{AllowOrigin: "*"}
}

// CORS returns a middleware that answers preflight requests and tags
// responses with the allowed origin.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.AllowOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
