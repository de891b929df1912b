package repositories

import (
	"context"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for persisted rate table snapshots
type ExchangeRateReader interface {
	// FindLatestSnapshot retrieves the most recently fetched table for a base currency.
	// It returns apperrors.ErrNotFound when no snapshot exists.
	FindLatestSnapshot(ctx context.Context, baseCurrencyCode string) (*domain.RateTable, error)
}

// ExchangeRateWriter defines write operations for rate table snapshots
type ExchangeRateWriter interface {
	// SaveSnapshot persists a complete rate table. Snapshots are never patched.
	SaveSnapshot(ctx context.Context, table domain.RateTable) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}

// ExchangeRateRepositoryWithTx extends ExchangeRateRepositoryFacade with transaction capabilities
type ExchangeRateRepositoryWithTx interface {
	ExchangeRateRepositoryFacade
	TransactionManager
}
