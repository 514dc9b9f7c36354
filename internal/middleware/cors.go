package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowHeaders = "Content-Type, Authorization"
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
)

// CORSMiddleware reflete a origem do chamador (painel da empresa e app
// do cliente rodam em hosts distintos) e resolve o pre-flight com 204.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
