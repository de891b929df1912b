package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_backend/internal/adapters/clientstore"
	"github.com/SscSPs/storefront_backend/internal/apperrors"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StorageFactory returns the client storage bound to the current request.
type StorageFactory func(c *gin.Context) portsrepo.ClientStorage

// CookieStorage keeps shopper state in cookies scoped to domain.
func CookieStorage(domain string, secure bool) StorageFactory {
	opts := clientstore.CookieOptions{Domain: domain, Secure: secure}
	return func(c *gin.Context) portsrepo.ClientStorage {
		return clientstore.New(c, opts)
	}
}

// respondWithError maps err to its status code. Internal errors are answered
// with fallback so details stay in the logs.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.StatusCode(err)
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	switch {
	case status == http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()))
		message = fallback
	case status >= http.StatusInternalServerError:
		logger.Error(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	default:
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, ErrorResponse{Error: message})
}

// bindError answers a request whose body or query failed binding.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
