package gateways

import (
	"context"
	"time"

	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// RatesProvider fetches exchange rates relative to a base currency.
type RatesProvider interface {
	// LatestRates returns multipliers keyed by currency code and the provider's update time.
	LatestRates(ctx context.Context, base string) (map[string]decimal.Decimal, time.Time, error)
	// Name identifies the provider in snapshots and logs.
	Name() string
}

// StripePaymentIntentParams is the request sent to Stripe. Amount is in minor units.
type StripePaymentIntentParams struct {
	Amount       int64
	Currency     string
	Description  string
	ReceiptEmail string
	Metadata     map[string]string
}

// StripeGateway creates Stripe payment intents.
type StripeGateway interface {
	CreatePaymentIntent(ctx context.Context, params StripePaymentIntentParams) (*dto.PaymentIntentResponse, error)
}

// PayPalOrderParams is the request sent to PayPal. Value is already rounded to the currency.
type PayPalOrderParams struct {
	Value       string
	Currency    string
	ReferenceID string
	Description string
}

// PayPalGateway creates and captures PayPal checkout orders.
type PayPalGateway interface {
	CreateOrder(ctx context.Context, params PayPalOrderParams) (*dto.PayPalOrderResponse, error)
	CaptureOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error)
}

// RecaptchaGateway calls the reCAPTCHA siteverify endpoint.
type RecaptchaGateway interface {
	SiteVerify(ctx context.Context, token, remoteIP string) (*dto.VerifyRecaptchaResponse, error)
}

// SocialGateway lists the most recent posts of a configured account.
type SocialGateway interface {
	RecentPosts(ctx context.Context, limit int) ([]dto.SocialPost, error)
}
