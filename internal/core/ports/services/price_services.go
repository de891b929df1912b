package services

import (
	"context"

	"github.com/SscSPs/storefront_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// PriceSvc converts and renders prices for display.
type PriceSvc interface {
	// ConvertPrice converts amount from one currency to another and formats the result.
	ConvertPrice(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*dto.ConvertPriceResponse, error)

	// DisplayPrices renders base-currency prices of a product batch in currencyCode.
	DisplayPrices(ctx context.Context, items []dto.DisplayPriceItem, currencyCode string) (*dto.DisplayPricesResponse, error)
}
