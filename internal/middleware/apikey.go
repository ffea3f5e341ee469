package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKey gates every route behind a static shared secret. The header value
// must equal the configured key exactly; there are no per-route exemptions.
// This authorizes calling applications, not end users.
func APIKey(headerName, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(headerName)
		if provided == "" || provided != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail": "Invalid or missing API Key",
			})
			return
		}

		c.Next()
	}
}
