package dto

import "time"

// LoginRequest holds admin credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the admin dashboard.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
