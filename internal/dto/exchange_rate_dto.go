package dto

import (
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateTableResponse defines the structure for API responses containing the rate table.
type ExchangeRateTableResponse struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
	ExpiresAt time.Time                  `json:"expiresAt"`
	Source    string                     `json:"source"`
	Stale     bool                       `json:"stale"`
}

// ToExchangeRateTableResponse converts a domain.RateTable to its DTO.
func ToExchangeRateTableResponse(table *domain.RateTable, now time.Time) ExchangeRateTableResponse {
	rates := make(map[string]decimal.Decimal, len(table.Rates))
	for code, r := range table.Rates {
		rates[code] = r
	}
	return ExchangeRateTableResponse{
		Base:      table.Base,
		Rates:     rates,
		FetchedAt: table.FetchedAt,
		ExpiresAt: table.ExpiresAt,
		Source:    table.Source,
		Stale:     table.IsExpired(now),
	}
}
