package handlers

import (
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvc
	baseCode          string
	storage           StorageFactory
}

// RegisterPreferenceRoutes registers the shopper preference routes.
func RegisterPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.PreferenceSvc, currencyService portssvc.CurrencySvcFacade, storage StorageFactory) {
	h := &preferenceHandler{
		preferenceService: preferenceService,
		baseCode:          currencyService.BaseCurrency().CurrencyCode,
		storage:           storage,
	}

	prefs := rg.Group("/preferences")
	{
		prefs.GET("/currency", h.getCurrency)
		prefs.PUT("/currency", h.selectCurrency)
	}
}

// getCurrency godoc
// @Summary Get the selected display currency
// @Description Returns the shopper's stored currency, or the base currency when none (or an unsupported one) is stored
// @Tags preferences
// @Produce  json
// @Success 200 {object} dto.CurrencyPreferenceResponse
// @Router /preferences/currency [get]
func (h *preferenceHandler) getCurrency(c *gin.Context) {
	currency, isDefault := h.preferenceService.ActiveCurrency(c.Request.Context(), h.storage(c))
	c.JSON(http.StatusOK, dto.CurrencyPreferenceResponse{
		Currency:  dto.ToCurrencyResponse(currency, h.baseCode),
		IsDefault: isDefault,
	})
}

// selectCurrency godoc
// @Summary Select the display currency
// @Description Stores the shopper's currency choice in a cookie
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   request body dto.SelectCurrencyRequest true "Currency to select"
// @Success 200 {object} dto.CurrencyPreferenceResponse
// @Failure 400 {object} ErrorResponse "Unsupported currency"
// @Router /preferences/currency [put]
func (h *preferenceHandler) selectCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	currency, err := h.preferenceService.SelectCurrency(c.Request.Context(), h.storage(c), strings.ToUpper(req.CurrencyCode))
	if err != nil {
		respondWithError(c, logger, err, "Failed to store currency preference")
		return
	}

	c.JSON(http.StatusOK, dto.CurrencyPreferenceResponse{
		Currency:  dto.ToCurrencyResponse(currency, h.baseCode),
		IsDefault: false,
	})
}
