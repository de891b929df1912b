package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
)

// PreferredCurrencyKey is the client storage key of the selected currency.
const PreferredCurrencyKey = "preferred_currency"

type preferenceService struct {
	BaseService
	currencies portssvc.CurrencyReaderSvc
}

// NewPreferenceService creates the selected-currency service.
func NewPreferenceService(currencies portssvc.CurrencyReaderSvc) portssvc.PreferenceSvc {
	return &preferenceService{currencies: currencies}
}

func (s *preferenceService) ActiveCurrency(ctx context.Context, store portsrepo.ClientStorage) (domain.Currency, bool) {
	code, ok := store.Get(PreferredCurrencyKey)
	if !ok || code == "" {
		return s.currencies.BaseCurrency(), true
	}
	currency, err := s.currencies.GetCurrencyByCode(ctx, code)
	if err != nil {
		// stale or tampered values fall back silently
		s.LogDebug(ctx, "Ignoring stored currency", slog.String("stored", code))
		return s.currencies.BaseCurrency(), true
	}
	return *currency, false
}

func (s *preferenceService) SelectCurrency(ctx context.Context, store portsrepo.ClientStorage, currencyCode string) (domain.Currency, error) {
	currency, err := s.currencies.GetCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Currency{}, apperrors.NewValidationError(fmt.Sprintf("unsupported currency '%s'", currencyCode))
		}
		return domain.Currency{}, fmt.Errorf("failed to resolve currency: %w", err)
	}
	if err := store.Set(PreferredCurrencyKey, currency.CurrencyCode); err != nil {
		return domain.Currency{}, fmt.Errorf("failed to store selected currency: %w", err)
	}
	s.LogInfo(ctx, "Currency selected", slog.String("currency_code", currency.CurrencyCode))
	return *currency, nil
}
