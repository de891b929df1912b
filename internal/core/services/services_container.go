package services

import (
	"fmt"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/platform/config"
)

// Gateways groups the third-party clients services depend on.
type Gateways struct {
	Rates     gateways.RatesProvider
	Stripe    gateways.StripeGateway
	PayPal    gateways.PayPalGateway
	Recaptcha gateways.RecaptchaGateway
	Instagram gateways.SocialGateway
	TikTok    gateways.SocialGateway
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gw Gateways) (*portssvc.ServiceContainer, error) {
	catalog, err := domain.NewCurrencyCatalog(cfg.BaseCurrency, domain.DefaultCurrencies)
	if err != nil {
		return nil, fmt.Errorf("invalid currency configuration: %w", err)
	}

	container := &portssvc.ServiceContainer{}
	container.Currency = NewCurrencyService(catalog)

	rates := NewExchangeRateService(gw.Rates, repos.ExchangeRateRepo, catalog.Base().CurrencyCode, cfg.RatesTTL,
		WithCheckInterval(cfg.RatesCheckInterval))
	container.ExchangeRate = rates
	container.RateRefresher = rates

	container.Price = NewPriceService(container.Currency, container.ExchangeRate)
	container.Preference = NewPreferenceService(container.Currency)
	container.Comparison = NewComparisonService()
	container.Wishlist = NewWishlistService()
	container.Payment = NewPaymentService(container.Currency, gw.Stripe, gw.PayPal)
	container.Recaptcha = NewRecaptchaService(gw.Recaptcha, cfg.RecaptchaMinScore, cfg.RecaptchaBypass)
	container.SocialFeed = NewSocialFeedService(gw.Instagram, gw.TikTok)
	container.Auth = NewAuthService(cfg)

	return container, nil
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
	_ portssvc.PriceSvc          = (*priceService)(nil)
	_ portssvc.PreferenceSvc     = (*preferenceService)(nil)
	_ portssvc.ProductListSvc    = (*productListService)(nil)
	_ portssvc.PaymentSvc        = (*paymentService)(nil)
	_ portssvc.RecaptchaSvc      = (*recaptchaService)(nil)
	_ portssvc.SocialFeedSvc     = (*socialFeedService)(nil)
	_ portssvc.AuthSvc           = (*authService)(nil)
)
