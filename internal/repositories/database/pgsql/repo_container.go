package pgsql

import (
	portsrepo "github.com/SscSPs/storefront_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
	}
}
