package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// priceHandler converts and renders prices in the shopper's currency.
type priceHandler struct {
	priceService      portssvc.PriceSvc
	preferenceService portssvc.PreferenceSvc
	storage           StorageFactory
}

// RegisterPriceRoutes registers price conversion routes.
func RegisterPriceRoutes(rg *gin.RouterGroup, priceService portssvc.PriceSvc, preferenceService portssvc.PreferenceSvc, storage StorageFactory) {
	h := &priceHandler{
		priceService:      priceService,
		preferenceService: preferenceService,
		storage:           storage,
	}

	prices := rg.Group("/prices")
	{
		prices.GET("/convert", h.convertPrice)
		prices.POST("/display", h.displayPrices)
	}
}

// convertPrice godoc
// @Summary Convert an amount
// @Description Converts an amount between supported currencies. from defaults to the base currency, to defaults to the shopper's selected currency.
// @Tags prices
// @Produce  json
// @Param   amount query string true "Amount in major units"
// @Param   from query string false "Source currency code"
// @Param   to query string false "Target currency code"
// @Success 200 {object} dto.ConvertPriceResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or unsupported currency"
// @Router /prices/convert [get]
func (h *priceHandler) convertPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertPriceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a decimal number"})
		return
	}

	to := strings.ToUpper(params.To)
	if to == "" {
		active, _ := h.preferenceService.ActiveCurrency(c.Request.Context(), h.storage(c))
		to = active.CurrencyCode
	}

	res, err := h.priceService.ConvertPrice(c.Request.Context(), amount, strings.ToUpper(params.From), to)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert price")
		return
	}
	c.JSON(http.StatusOK, res)
}

// displayPrices godoc
// @Summary Render product prices
// @Description Renders base-currency prices, sale prices, discount badges and price ranges for a batch of products in one currency. An empty currency means the shopper's selected currency.
// @Tags prices
// @Accept  json
// @Produce  json
// @Param   request body dto.DisplayPricesRequest true "Products to render"
// @Success 200 {object} dto.DisplayPricesResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Router /prices/display [post]
func (h *priceHandler) displayPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DisplayPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	code := strings.ToUpper(req.Currency)
	if code == "" {
		active, _ := h.preferenceService.ActiveCurrency(c.Request.Context(), h.storage(c))
		code = active.CurrencyCode
	}

	res, err := h.priceService.DisplayPrices(c.Request.Context(), req.Items, code)
	if err != nil {
		respondWithError(c, logger, err, "Failed to render prices")
		return
	}
	logger.Debug("Rendered prices", slog.Int("count", len(res.Items)), slog.String("currency", res.Currency))
	c.JSON(http.StatusOK, res)
}
