// api/middleware/cors.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// defaultOrigins are the landing-page hosts allowed to call the API when no
// FE_ORIGIN override is configured.
var defaultOrigins = map[string]bool{
	"https://borapassageiro.com":     true,
	"https://www.borapassageiro.com": true,
	"http://localhost:5173":          true,
	"http://localhost:3000":          true,
}

// CORSMiddleware handles cross-origin requests from the landing page and the
// admin dashboard. extraOrigin (from FE_ORIGIN) extends the default list for
// deployments behind another host.
func CORSMiddleware(extraOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if defaultOrigins[origin] || (extraOrigin != "" && origin == extraOrigin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, fbc, fbp, ttclid, x-ga-client-id")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
