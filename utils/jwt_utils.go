package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the fixed admin role claim on top of the standard JWT
// fields. There is only one identity in this system, so no subject or user
// id is needed.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const adminRole = "admin"

// tokenTTL is the only invalidation path: there is no logout, refresh, or
// revocation mechanism.
const tokenTTL = 24 * time.Hour

// GenerateAdminJWT signs a bearer token encoding the admin role, valid for
// 24 hours.
func GenerateAdminJWT(secret []byte) (string, error) {
	now := time.Now()

	claims := &Claims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "bora-passageiro-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT parses a token string, verifying signature, expiry, and the
// admin role claim.
func ValidateJWT(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	if claims.Role != adminRole {
		return nil, fmt.Errorf("token does not carry the admin role")
	}

	return claims, nil
}
