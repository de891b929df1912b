package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateTableSnapshotMapping(t *testing.T) {
	fetched := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	table := domain.RateTable{
		SnapshotID: "0b7c7f1e-5d55-4c57-8a44-6b0c4d7f2f10",
		Base:       "USD",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("0.91"),
		},
		FetchedAt: fetched,
		ExpiresAt: fetched.Add(24 * time.Hour),
		Source:    "open.er-api.com",
	}

	header, rows := ToModelExchangeRateSnapshot(table)
	assert.Equal(t, "USD", header.BaseCurrencyCode)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, table.SnapshotID, row.SnapshotID)
	}

	back := ToDomainRateTable(header, rows)
	assert.Equal(t, table.Base, back.Base)
	assert.Equal(t, table.Source, back.Source)
	assert.True(t, back.Rates["EUR"].Equal(decimal.RequireFromString("0.91")))
	assert.Equal(t, table.ExpiresAt, back.ExpiresAt)
}
