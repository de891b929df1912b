package services

import (
	"context"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for the currency catalog
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// BaseCurrency returns the currency catalog prices are authored in.
	BaseCurrency() domain.Currency
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for the exchange-rate table
type ExchangeRateReaderSvc interface {
	// CurrentRates returns the table in effect. It is never nil or empty.
	CurrentRates(ctx context.Context) *domain.RateTable
}

// ExchangeRateWriterSvc defines operations that replace the exchange-rate table
type ExchangeRateWriterSvc interface {
	// RefreshRates fetches a new table from the provider and swaps it in.
	// On failure the previous table stays in effect.
	RefreshRates(ctx context.Context) (*domain.RateTable, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// RateRefresherSvc keeps the exchange-rate table current for the process lifetime.
type RateRefresherSvc interface {
	// Load installs the initial table: a fresh persisted snapshot, else a
	// refresh, else the expired snapshot, else the fallback table.
	Load(ctx context.Context)

	// Run refreshes the table whenever it has expired until ctx is cancelled.
	Run(ctx context.Context)
}
