package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	catalog *domain.CurrencyCatalog
}

// NewCurrencyService serves the static currency catalog.
func NewCurrencyService(catalog *domain.CurrencyCatalog) portssvc.CurrencySvcFacade {
	return &currencyService{catalog: catalog}
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, ok := s.catalog.Lookup(currencyCode)
	if !ok {
		s.LogDebug(ctx, "Currency not in catalog", "currency_code", currencyCode)
		return nil, fmt.Errorf("%w: currency '%s'", apperrors.ErrNotFound, strings.ToUpper(strings.TrimSpace(currencyCode)))
	}
	return &currency, nil
}

func (s *currencyService) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	return s.catalog.Currencies(), nil
}

func (s *currencyService) BaseCurrency() domain.Currency {
	return s.catalog.Base()
}
