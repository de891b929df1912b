package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RecaptchaFailureResponse carries the verdict of a rejected token.
type RecaptchaFailureResponse struct {
	Error  string                       `json:"error"`
	Result *dto.VerifyRecaptchaResponse `json:"result"`
}

type recaptchaHandler struct {
	recaptchaService portssvc.RecaptchaSvc
}

// RegisterRecaptchaRoutes registers the token verification route.
func RegisterRecaptchaRoutes(rg *gin.RouterGroup, recaptchaService portssvc.RecaptchaSvc) {
	h := &recaptchaHandler{recaptchaService: recaptchaService}
	rg.POST("/recaptcha/verify", h.verify)
}

// verify godoc
// @Summary Verify a reCAPTCHA token
// @Description Verifies a widget token with Google. Rejected tokens answer 400 with the verdict.
// @Tags recaptcha
// @Accept  json
// @Produce  json
// @Param   request body dto.VerifyRecaptchaRequest true "Widget token"
// @Success 200 {object} dto.VerifyRecaptchaResponse
// @Failure 400 {object} RecaptchaFailureResponse "Verification failed"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 502 {object} ErrorResponse "reCAPTCHA unreachable"
// @Router /recaptcha/verify [post]
func (h *recaptchaHandler) verify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VerifyRecaptchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	verdict, err := h.recaptchaService.Verify(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		var appErr *apperrors.AppError
		if verdict != nil && errors.As(err, &appErr) && errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("reCAPTCHA token rejected", slog.String("error", err.Error()), slog.Any("error_codes", verdict.ErrorCodes))
			c.JSON(http.StatusBadRequest, RecaptchaFailureResponse{Error: appErr.Message, Result: verdict})
			return
		}
		respondWithError(c, logger, err, "Failed to verify reCAPTCHA token")
		return
	}
	c.JSON(http.StatusOK, verdict)
}
