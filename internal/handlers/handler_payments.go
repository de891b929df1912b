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

// paymentHandler proxies checkout calls to Stripe and PayPal.
type paymentHandler struct {
	paymentService portssvc.PaymentSvc
}

// RegisterPaymentRoutes registers payment proxy routes. Callers attach rate limiting to rg.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvc) {
	h := &paymentHandler{paymentService: paymentService}

	payments := rg.Group("/payments")
	{
		payments.POST("/stripe/intents", h.createStripePaymentIntent)
		payments.POST("/paypal/orders", h.createPayPalOrder)
		payments.POST("/paypal/orders/:orderID/capture", h.capturePayPalOrder)
	}
}

// createStripePaymentIntent godoc
// @Summary Create a Stripe payment intent
// @Description Creates a payment intent for an amount in major units; the amount sent to Stripe is in the currency's minor units.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   request body dto.CreatePaymentIntentRequest true "Payment details"
// @Success 201 {object} dto.PaymentIntentResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or currency"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 502 {object} ErrorResponse "Stripe request failed"
// @Router /payments/stripe/intents [post]
func (h *paymentHandler) createStripePaymentIntent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	req.Currency = strings.ToUpper(req.Currency)

	intent, err := h.paymentService.CreateStripePaymentIntent(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create payment intent")
		return
	}

	logger.Info("Stripe payment intent created", slog.String("intent_id", intent.ID), slog.String("currency", intent.Currency))
	c.JSON(http.StatusCreated, intent)
}

// createPayPalOrder godoc
// @Summary Create a PayPal order
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   request body dto.CreatePayPalOrderRequest true "Order details"
// @Success 201 {object} dto.PayPalOrderResponse
// @Failure 400 {object} ErrorResponse "Invalid amount or currency"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 502 {object} ErrorResponse "PayPal request failed"
// @Router /payments/paypal/orders [post]
func (h *paymentHandler) createPayPalOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayPalOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}
	req.Currency = strings.ToUpper(req.Currency)

	order, err := h.paymentService.CreatePayPalOrder(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create PayPal order")
		return
	}

	logger.Info("PayPal order created", slog.String("order_id", order.ID), slog.String("status", order.Status))
	c.JSON(http.StatusCreated, order)
}

// capturePayPalOrder godoc
// @Summary Capture an approved PayPal order
// @Tags payments
// @Produce  json
// @Param   orderID path string true "PayPal order ID"
// @Success 200 {object} dto.PayPalOrderResponse
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Failure 502 {object} ErrorResponse "PayPal request failed"
// @Router /payments/paypal/orders/{orderID}/capture [post]
func (h *paymentHandler) capturePayPalOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")
	logger = logger.With(slog.String("order_id", orderID))

	order, err := h.paymentService.CapturePayPalOrder(c.Request.Context(), orderID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to capture PayPal order")
		return
	}

	logger.Info("PayPal order captured", slog.String("status", order.Status))
	c.JSON(http.StatusOK, order)
}
