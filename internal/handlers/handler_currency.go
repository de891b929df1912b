package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific supported currency by its 3-letter code
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Invalid currency code"
// @Failure 404 {object} ErrorResponse "Currency not supported"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := strings.ToUpper(c.Param("code"))

	if len(currencyCode) != 3 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Currency code must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("currency_code", currencyCode))

	currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), currencyCode)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve currency")
		return
	}

	base := h.currencyService.BaseCurrency()
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(*currency, base.CurrencyCode))
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the currencies prices can be displayed in, in selector order
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} ErrorResponse "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}

	base := h.currencyService.BaseCurrency()
	logger.Debug("Currencies listed", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies, base.CurrencyCode))
}
