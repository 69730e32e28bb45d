// api/handlers/auth_handlers.go
package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"borapassageiro/api/config"
	"borapassageiro/api/models"
	"borapassageiro/api/utils"
)

type AuthHandlers struct{}

func NewAuthHandlers() *AuthHandlers {
	return &AuthHandlers{}
}

// Login exchanges the shared admin password for a signed 24h bearer token.
// When ADMIN_PASSWORD_HASH is configured the password is checked against the
// bcrypt hash, otherwise against the plain ADMIN_PASSWORD value in constant
// time.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !checkAdminPassword(req.Password) {
		log.Println("Login failed: password mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	tokenString, err := utils.GenerateAdminJWT([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		log.Printf("ERROR: Failed to generate admin JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authentication token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   tokenString,
	})
}

func checkAdminPassword(password string) bool {
	if hash := config.AppConfig.AdminPasswordHash; hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(config.AppConfig.AdminPassword), []byte(password)) == 1
}
