package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loginRate bounds credential guessing per client IP.
const loginRate = "5-M"

// AuthHandler handles admin authentication requests.
type AuthHandler struct {
	authService portssvc.AuthSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvc) *AuthHandler {
	return &AuthHandler{authService: as}
}

// RegisterAuthRoutes sets up the admin login routes.
func RegisterAuthRoutes(r gin.IRouter, authService portssvc.AuthSvc) {
	h := NewAuthHandler(authService)

	rate, _ := limiter.NewRateFromFormatted(loginRate)
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/google", limitMiddleware, h.LoginWithGoogle)
	}
}

// Login godoc
// @Summary Admin login
// @Description Authenticates the configured administrator and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.loginFailed(c, logger, err, "Invalid username or password")
		return
	}

	logger.Info("Admin logged in", slog.String("method", "password"))
	c.JSON(http.StatusOK, res)
}

// LoginWithGoogle godoc
// @Summary Admin login with Google
// @Description Exchanges a Google ID token of an allow-listed admin email for a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google [post]
func (h *AuthHandler) LoginWithGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	res, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		h.loginFailed(c, logger, err, "Google sign-in was not accepted")
		return
	}

	logger.Info("Admin logged in", slog.String("method", "google"))
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) loginFailed(c *gin.Context, logger *slog.Logger, err error, message string) {
	if errors.Is(err, apperrors.ErrUnauthorized) {
		logger.Warn("Admin login rejected", slog.String("error", err.Error()), slog.String("client_ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: message})
		return
	}
	logger.Error("Failed to log in admin", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
}
