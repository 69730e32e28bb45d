package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("unit-test-signing-secret")

func TestGenerateAndValidateAdminJWT(t *testing.T) {
	tokenString, err := GenerateAdminJWT(testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	// 24h expiry, allowing a little slack for test execution time.
	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiry, time.Minute)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	tokenString, err := GenerateAdminJWT(testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, []byte("a-different-secret"))
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	claims := &Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_MissingRole(t *testing.T) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(testSecret)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", testSecret)
	assert.Error(t, err)
}
