package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/platform/config"
	"github.com/SscSPs/storefront_backend/internal/utils"
	"google.golang.org/api/idtoken"
)

// IDTokenValidator validates a Google ID token for an audience.
type IDTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

type authService struct {
	BaseService
	cfg             *config.Config
	validateIDToken IDTokenValidator
}

// AuthServiceOption configures the auth service.
type AuthServiceOption func(*authService)

// WithIDTokenValidator replaces Google ID token validation.
func WithIDTokenValidator(v IDTokenValidator) AuthServiceOption {
	return func(s *authService) {
		s.validateIDToken = v
	}
}

// NewAuthService creates the admin authentication service.
func NewAuthService(cfg *config.Config, opts ...AuthServiceOption) portssvc.AuthSvc {
	s := &authService{cfg: cfg, validateIDToken: idtoken.Validate}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	if s.cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("%w: password login is disabled", apperrors.ErrUnauthorized)
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername)) == 1
	// always run bcrypt so a wrong username costs the same as a wrong password
	passOK := utils.AdminPasswordMatches(password, s.cfg.AdminPasswordHash)
	if !userOK || !passOK {
		s.LogWarn(ctx, "Admin login failed", slog.String("username", username))
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return s.issueToken(ctx, username)
}

func (s *authService) LoginWithGoogle(ctx context.Context, idToken string) (*dto.LoginResponse, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, fmt.Errorf("%w: google login is disabled", apperrors.ErrUnauthorized)
	}
	payload, err := s.validateIDToken(ctx, idToken, s.cfg.GoogleClientID)
	if err != nil {
		s.LogWarn(ctx, "Invalid Google ID token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: invalid google id token", apperrors.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified || !s.isAdminEmail(email) {
		s.LogWarn(ctx, "Google account is not an admin", slog.String("email", email), slog.Bool("email_verified", verified))
		return nil, fmt.Errorf("%w: account is not an administrator", apperrors.ErrUnauthorized)
	}
	return s.issueToken(ctx, strings.ToLower(email))
}

func (s *authService) isAdminEmail(email string) bool {
	for _, allowed := range s.cfg.AdminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

func (s *authService) issueToken(ctx context.Context, subject string) (*dto.LoginResponse, error) {
	token, expiresAt, err := s.cfg.AdminTokenSigner().Issue(subject, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	s.LogInfo(ctx, "Admin logged in", slog.String("admin_id", subject))
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
