package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/platform/metrics"
	"github.com/SscSPs/storefront_backend/internal/utils"
	"github.com/shopspring/decimal"
)

type paymentService struct {
	BaseService
	currencies portssvc.CurrencyReaderSvc
	stripe     gateways.StripeGateway
	paypal     gateways.PayPalGateway
}

// NewPaymentService creates the payment proxy service.
func NewPaymentService(currencies portssvc.CurrencyReaderSvc, stripe gateways.StripeGateway, paypal gateways.PayPalGateway) portssvc.PaymentSvc {
	return &paymentService{currencies: currencies, stripe: stripe, paypal: paypal}
}

// checkoutCurrency validates the amount and resolves its currency.
func (s *paymentService) checkoutCurrency(ctx context.Context, amount decimal.Decimal, code string) (domain.Currency, error) {
	if !amount.IsPositive() {
		return domain.Currency{}, apperrors.NewValidationError("amount must be positive")
	}
	currency, err := s.currencies.GetCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Currency{}, apperrors.NewValidationError(fmt.Sprintf("unsupported currency '%s'", code))
		}
		return domain.Currency{}, fmt.Errorf("failed to resolve currency: %w", err)
	}
	return *currency, nil
}

// MinorUnits converts a major-unit amount to the integer minor units payment
// providers expect, e.g. 19.99 USD becomes 1999 and 1500 JPY stays 1500.
func MinorUnits(amount decimal.Decimal, currency domain.Currency) int64 {
	return utils.RoundToCurrency(amount, currency).Shift(currency.DecimalPlaces).IntPart()
}

func (s *paymentService) CreateStripePaymentIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	currency, err := s.checkoutCurrency(ctx, req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}
	params := gateways.StripePaymentIntentParams{
		Amount:       MinorUnits(req.Amount, currency),
		Currency:     currency.CurrencyCode,
		Description:  req.Description,
		ReceiptEmail: req.ReceiptEmail,
		Metadata:     req.Metadata,
	}

	start := time.Now()
	intent, err := s.stripe.CreatePaymentIntent(ctx, params)
	metrics.ObserveUpstream("stripe", time.Since(start), err)
	if err != nil {
		s.LogError(ctx, err, "Stripe payment intent failed", slog.Int64("amount", params.Amount), slog.String("currency", params.Currency))
		return nil, apperrors.NewUpstreamError("stripe", err)
	}
	s.LogInfo(ctx, "Stripe payment intent created", slog.String("intent_id", intent.ID))
	return intent, nil
}

func (s *paymentService) CreatePayPalOrder(ctx context.Context, req dto.CreatePayPalOrderRequest) (*dto.PayPalOrderResponse, error) {
	currency, err := s.checkoutCurrency(ctx, req.Amount, req.Currency)
	if err != nil {
		return nil, err
	}
	params := gateways.PayPalOrderParams{
		Value:       utils.RoundToCurrency(req.Amount, currency).StringFixed(currency.DecimalPlaces),
		Currency:    currency.CurrencyCode,
		ReferenceID: req.ReferenceID,
		Description: req.Description,
	}

	start := time.Now()
	order, err := s.paypal.CreateOrder(ctx, params)
	metrics.ObserveUpstream("paypal", time.Since(start), err)
	if err != nil {
		s.LogError(ctx, err, "PayPal order creation failed", slog.String("value", params.Value), slog.String("currency", params.Currency))
		return nil, apperrors.NewUpstreamError("paypal", err)
	}
	s.LogInfo(ctx, "PayPal order created", slog.String("order_id", order.ID))
	return order, nil
}

func (s *paymentService) CapturePayPalOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, apperrors.NewValidationError("orderID is required")
	}

	start := time.Now()
	order, err := s.paypal.CaptureOrder(ctx, orderID)
	metrics.ObserveUpstream("paypal", time.Since(start), err)
	if err != nil {
		s.LogError(ctx, err, "PayPal capture failed", slog.String("order_id", orderID))
		return nil, apperrors.NewUpstreamError("paypal", err)
	}
	s.LogInfo(ctx, "PayPal order captured", slog.String("order_id", order.ID), slog.String("status", order.Status))
	return order, nil
}
