package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrencyCatalog(t *testing.T) {
	catalog, err := domain.NewCurrencyCatalog("usd", domain.DefaultCurrencies)
	require.NoError(t, err)
	assert.Equal(t, "USD", catalog.Base().CurrencyCode)
	assert.Len(t, catalog.Currencies(), len(domain.DefaultCurrencies))

	jpy, ok := catalog.Lookup(" jpy ")
	require.True(t, ok)
	assert.Equal(t, int32(0), jpy.DecimalPlaces)

	_, ok = catalog.Lookup("XYZ")
	assert.False(t, ok)
}

func TestNewCurrencyCatalog_Errors(t *testing.T) {
	_, err := domain.NewCurrencyCatalog("XYZ", domain.DefaultCurrencies)
	assert.Error(t, err)

	_, err = domain.NewCurrencyCatalog("USD", nil)
	assert.Error(t, err)

	dup := []domain.Currency{{CurrencyCode: "USD"}, {CurrencyCode: "usd"}}
	_, err = domain.NewCurrencyCatalog("USD", dup)
	assert.Error(t, err)
}

func TestCurrencyCatalog_CurrenciesIsCopy(t *testing.T) {
	catalog, err := domain.NewCurrencyCatalog("USD", domain.DefaultCurrencies)
	require.NoError(t, err)

	list := catalog.Currencies()
	list[0].Symbol = "changed"

	usd, _ := catalog.Lookup("USD")
	assert.Equal(t, "$", usd.Symbol)
}

func TestFallbackRateTable(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	usd := domain.FallbackRateTable("USD", now)
	assert.True(t, usd.RateOrIdentity("USD").Equal(decimal.NewFromInt(1)))
	assert.Equal(t, domain.RateSourceFallback, usd.Source)
	assert.True(t, usd.IsExpired(now))

	eur := domain.FallbackRateTable("EUR", now)
	assert.True(t, eur.RateOrIdentity("EUR").Equal(decimal.NewFromInt(1)))
	usdPerEur := eur.RateOrIdentity("USD")
	assert.True(t, usdPerEur.GreaterThan(decimal.NewFromInt(1)), "USD per EUR should exceed 1, got %s", usdPerEur)
}

func TestRateTable_RateOrIdentity(t *testing.T) {
	table := &domain.RateTable{
		Base:  "USD",
		Rates: map[string]decimal.Decimal{"USD": decimal.NewFromInt(1), "EUR": decimal.RequireFromString("0.5"), "BAD": decimal.Zero},
	}
	assert.True(t, table.RateOrIdentity("EUR").Equal(decimal.RequireFromString("0.5")))
	assert.True(t, table.RateOrIdentity("ZZZ").Equal(decimal.NewFromInt(1)))
	assert.True(t, table.RateOrIdentity("BAD").Equal(decimal.NewFromInt(1)))

	var nilTable *domain.RateTable
	assert.True(t, nilTable.RateOrIdentity("EUR").Equal(decimal.NewFromInt(1)))
	assert.True(t, nilTable.IsEmpty())
}
