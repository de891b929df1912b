package services

import (
	"context"

	"github.com/SscSPs/storefront_backend/internal/dto"
)

// PaymentSvc proxies checkout calls to payment providers.
type PaymentSvc interface {
	CreateStripePaymentIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
	CreatePayPalOrder(ctx context.Context, req dto.CreatePayPalOrderRequest) (*dto.PayPalOrderResponse, error)
	CapturePayPalOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error)
}

// RecaptchaSvc verifies reCAPTCHA tokens.
type RecaptchaSvc interface {
	// Verify returns the verdict. A failed verification is reported with
	// apperrors.ErrValidation; an unreachable provider with apperrors.ErrUpstream.
	Verify(ctx context.Context, req dto.VerifyRecaptchaRequest, remoteIP string) (*dto.VerifyRecaptchaResponse, error)
}

// SocialFeedSvc retrieves social media feeds shown on the storefront.
type SocialFeedSvc interface {
	InstagramFeed(ctx context.Context, limit int) (*dto.SocialFeedResponse, error)
	TikTokFeed(ctx context.Context, limit int) (*dto.SocialFeedResponse, error)
}
