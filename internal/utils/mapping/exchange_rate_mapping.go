package mapping

import (
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/SscSPs/storefront_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelExchangeRateSnapshot splits a domain RateTable into its snapshot header and rate rows
func ToModelExchangeRateSnapshot(d domain.RateTable) (models.ExchangeRateSnapshot, []models.ExchangeRateSnapshotRate) {
	header := models.ExchangeRateSnapshot{
		SnapshotID:       d.SnapshotID,
		BaseCurrencyCode: d.Base,
		Source:           d.Source,
		FetchedAt:        d.FetchedAt,
		ExpiresAt:        d.ExpiresAt,
	}
	rates := make([]models.ExchangeRateSnapshotRate, 0, len(d.Rates))
	for code, r := range d.Rates {
		rates = append(rates, models.ExchangeRateSnapshotRate{
			SnapshotID:   d.SnapshotID,
			CurrencyCode: code,
			Rate:         r,
		})
	}
	return header, rates
}

// ToDomainRateTable rebuilds a domain RateTable from a snapshot header and its rate rows
func ToDomainRateTable(m models.ExchangeRateSnapshot, rows []models.ExchangeRateSnapshotRate) domain.RateTable {
	rates := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		rates[row.CurrencyCode] = row.Rate
	}
	return domain.RateTable{
		SnapshotID: m.SnapshotID,
		Base:       m.BaseCurrencyCode,
		Rates:      rates,
		FetchedAt:  m.FetchedAt,
		ExpiresAt:  m.ExpiresAt,
		Source:     m.Source,
	}
}
