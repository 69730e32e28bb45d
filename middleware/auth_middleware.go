package middleware

import (
	"log"
	"net/http"
	"strings"

	"borapassageiro/api/config"
	"borapassageiro/api/utils"

	"github.com/gin-gonic/gin"
)

// AuthRequired guards the admin endpoints. It accepts only a bearer token in
// the Authorization header; signature, expiry, and the admin role claim are
// verified on every request.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No token provided"})
			return
		}

		tokenString := header
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}

		claims, err := utils.ValidateJWT(tokenString, []byte(config.AppConfig.JWTSecret))
		if err != nil {
			log.Printf("AuthRequired: Invalid JWT token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid or expired token"})
			return
		}

		c.Set("role", claims.Role)
		c.Next()
	}
}
