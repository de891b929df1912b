package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/storefront_backend/internal/apperrors"
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRateRepository keeps the latest snapshot per base currency in memory.
// It is used when no database is configured; snapshots do not survive a restart.
type ExchangeRateRepository struct {
	mu     sync.RWMutex
	latest map[string]domain.RateTable
}

// NewExchangeRateRepository creates an empty in-memory snapshot store.
func NewExchangeRateRepository() *ExchangeRateRepository {
	return &ExchangeRateRepository{latest: map[string]domain.RateTable{}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*ExchangeRateRepository)(nil)

// NewRepositoryProvider wires the in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: NewExchangeRateRepository(),
	}
}

// SaveSnapshot stores a copy of the table, replacing any older snapshot for the same base.
func (r *ExchangeRateRepository) SaveSnapshot(_ context.Context, table domain.RateTable) error {
	if table.SnapshotID == "" {
		table.SnapshotID = uuid.NewString()
	}
	table.Rates = copyRates(table.Rates)

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.latest[table.Base]; ok && prev.FetchedAt.After(table.FetchedAt) {
		return nil
	}
	r.latest[table.Base] = table
	return nil
}

// FindLatestSnapshot returns a copy of the latest snapshot for the base currency.
func (r *ExchangeRateRepository) FindLatestSnapshot(_ context.Context, baseCurrencyCode string) (*domain.RateTable, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	table, ok := r.latest[baseCurrencyCode]
	if !ok {
		return nil, apperrors.NewNotFoundError("no exchange rate snapshot for base " + baseCurrencyCode)
	}
	table.Rates = copyRates(table.Rates)
	return &table, nil
}

func copyRates(in map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
