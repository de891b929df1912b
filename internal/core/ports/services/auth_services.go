package services

import (
	"context"

	"github.com/SscSPs/storefront_backend/internal/dto"
)

// AuthSvc authenticates storefront administrators.
type AuthSvc interface {
	// Login checks the configured admin credentials and issues an access token.
	Login(ctx context.Context, username, password string) (*dto.LoginResponse, error)

	// LoginWithGoogle validates a Google ID token for an allow-listed admin email.
	LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error)
}
