package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateSnapshot is one row of exchange_rate_snapshots: the header of a
// complete rate table fetched from the provider.
type ExchangeRateSnapshot struct {
	SnapshotID       string    `json:"snapshotID"`       // Primary Key (UUID)
	BaseCurrencyCode string    `json:"baseCurrencyCode"` // e.g. "USD"
	Source           string    `json:"source"`           // provider name or "fallback"
	FetchedAt        time.Time `json:"fetchedAt"`
	ExpiresAt        time.Time `json:"expiresAt"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ExchangeRateSnapshotRate is one currency's rate within a snapshot.
type ExchangeRateSnapshotRate struct {
	SnapshotID   string          `json:"snapshotID"`   // FK -> ExchangeRateSnapshot.snapshotID
	CurrencyCode string          `json:"currencyCode"` // e.g. "EUR"
	Rate         decimal.Decimal `json:"rate"`         // multiplier relative to the base
}
