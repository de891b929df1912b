package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	now                 func() time.Time
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
		now:                 time.Now,
	}
}

// RegisterExchangeRateRoutes registers the public rate table route.
func RegisterExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)
	rg.GET("/exchange-rates", h.getCurrentRates)
}

// RegisterExchangeRateAdminRoutes registers rate management routes. rg must be authenticated.
func RegisterExchangeRateAdminRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)
	rg.POST("/exchange-rates/refresh", h.refreshRates)
}

// getCurrentRates godoc
// @Summary Get the current exchange-rate table
// @Description Returns the rates (base currency = 1) used for price conversion. Stale is true when the table has expired and a refresh is pending or failing.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRateTableResponse
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getCurrentRates(c *gin.Context) {
	table := h.exchangeRateService.CurrentRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToExchangeRateTableResponse(table, h.now()))
}

// refreshRates godoc
// @Summary Refresh exchange rates now
// @Description Fetches a new table from the rate provider. On failure the previous table stays in effect.
// @Tags exchange rates
// @Produce  json
// @Success 200 {object} dto.ExchangeRateTableResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Rate provider failed"
// @Security BearerAuth
// @Router /admin/exchange-rates/refresh [post]
func (h *exchangeRateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetAdminIDFromContext(c)
	logger.Info("Manual exchange-rate refresh requested", slog.String("admin_id", adminID))

	table, err := h.exchangeRateService.RefreshRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to refresh exchange rates")
		return
	}

	logger.Info("Exchange rates refreshed", slog.Int("rate_count", len(table.Rates)), slog.String("source", table.Source))
	c.JSON(http.StatusOK, dto.ToExchangeRateTableResponse(table, h.now()))
}
