package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_backend/internal/core/ports/services"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/SscSPs/storefront_backend/internal/utils"
	"github.com/SscSPs/storefront_backend/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

type priceService struct {
	BaseService
	currencies portssvc.CurrencyReaderSvc
	rates      portssvc.ExchangeRateReaderSvc
}

// NewPriceService creates a price service over the catalog and the rate table in effect.
func NewPriceService(currencies portssvc.CurrencyReaderSvc, rates portssvc.ExchangeRateReaderSvc) portssvc.PriceSvc {
	return &priceService{currencies: currencies, rates: rates}
}

// resolveCurrency maps an empty code to the base currency and unknown codes to a validation error.
func (s *priceService) resolveCurrency(ctx context.Context, code string) (domain.Currency, error) {
	if code == "" {
		return s.currencies.BaseCurrency(), nil
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

func (s *priceService) ConvertPrice(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*dto.ConvertPriceResponse, error) {
	if amount.IsNegative() {
		return nil, apperrors.NewValidationError("amount must not be negative")
	}
	from, err := s.resolveCurrency(ctx, fromCode)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveCurrency(ctx, toCode)
	if err != nil {
		return nil, err
	}

	table := s.rates.CurrentRates(ctx)
	converted := pricing.Convert(table, amount, from.CurrencyCode, to.CurrencyCode)

	return &dto.ConvertPriceResponse{
		Amount:    amount,
		From:      from.CurrencyCode,
		To:        to.CurrencyCode,
		Converted: utils.RoundToCurrency(converted, to),
		Formatted: utils.FormatCurrency(converted, to),
	}, nil
}

func (s *priceService) DisplayPrices(ctx context.Context, items []dto.DisplayPriceItem, currencyCode string) (*dto.DisplayPricesResponse, error) {
	currency, err := s.resolveCurrency(ctx, currencyCode)
	if err != nil {
		return nil, err
	}
	base := s.currencies.BaseCurrency().CurrencyCode
	table := s.rates.CurrentRates(ctx)
	convert := func(p decimal.Decimal) decimal.Decimal {
		return pricing.Convert(table, p, base, currency.CurrencyCode)
	}

	out := make([]dto.DisplayPrice, 0, len(items))
	for _, item := range items {
		if err := validateDisplayItem(item); err != nil {
			return nil, err
		}
		display := dto.DisplayPrice{
			ProductID: item.ProductID,
			Price:     utils.FormatCurrency(convert(item.Price), currency),
		}
		if item.SalePrice != nil {
			display.SalePrice = utils.FormatCurrency(convert(*item.SalePrice), currency)
			// computed on base prices so the percentage does not depend on rounding
			display.DiscountPercentage = pricing.DiscountPercentage(item.Price, *item.SalePrice)
		}
		if item.MinPrice != nil && item.MaxPrice != nil {
			display.PriceRange = pricing.FormatRange(convert(*item.MinPrice), convert(*item.MaxPrice), currency)
		}
		out = append(out, display)
	}

	return &dto.DisplayPricesResponse{Currency: currency.CurrencyCode, Items: out}, nil
}

// validateDisplayItem rejects negative values in any of the item's prices.
func validateDisplayItem(item dto.DisplayPriceItem) error {
	prices := []struct {
		field string
		value *decimal.Decimal
	}{
		{"price", &item.Price},
		{"salePrice", item.SalePrice},
		{"minPrice", item.MinPrice},
		{"maxPrice", item.MaxPrice},
	}
	for _, p := range prices {
		if p.value != nil && p.value.IsNegative() {
			return apperrors.NewValidationError(fmt.Sprintf("product %s has a negative %s", item.ProductID, p.field))
		}
	}
	return nil
}
