package models

// LoginRequest is the body accepted by POST /api/auth/login. A single admin
// identity exists; the password is the only credential.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
