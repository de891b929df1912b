package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSourceFallback marks a table built from the hardcoded fallback rates.
const RateSourceFallback = "fallback"

// RateTable maps currency codes to multipliers relative to the base currency.
// A table is always replaced as a whole; callers must treat it as read-only.
type RateTable struct {
	SnapshotID string                     `json:"snapshotID"`
	Base       string                     `json:"base"`
	Rates      map[string]decimal.Decimal `json:"rates"`
	FetchedAt  time.Time                  `json:"fetchedAt"`
	ExpiresAt  time.Time                  `json:"expiresAt"`
	Source     string                     `json:"source"`
}

// Rate returns the multiplier for code and whether the table has one.
func (t *RateTable) Rate(code string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Decimal{}, false
	}
	r, ok := t.Rates[code]
	return r, ok
}

// RateOrIdentity returns the rate for code, or 1 when the table has none.
func (t *RateTable) RateOrIdentity(code string) decimal.Decimal {
	if r, ok := t.Rate(code); ok && r.IsPositive() {
		return r
	}
	return decimal.NewFromInt(1)
}

// IsExpired reports whether the table's validity window has passed at now.
func (t *RateTable) IsExpired(now time.Time) bool {
	return t == nil || !now.Before(t.ExpiresAt)
}

// IsEmpty reports whether the table carries no rates.
func (t *RateTable) IsEmpty() bool {
	return t == nil || len(t.Rates) == 0
}

// fallbackRates are approximate USD-relative rates used when no table could be loaded.
var fallbackRates = map[string]string{
	"USD": "1",
	"EUR": "0.92",
	"GBP": "0.79",
	"CAD": "1.36",
	"AUD": "1.52",
	"JPY": "149.50",
	"KRW": "1330",
	"CHF": "0.88",
	"SEK": "10.60",
	"INR": "83.20",
}

// FallbackRateTable builds the hardcoded table rebased onto base.
// Currencies without a hardcoded rate are left out and convert at identity.
func FallbackRateTable(base string, now time.Time) *RateTable {
	rates := make(map[string]decimal.Decimal, len(fallbackRates))
	for code, raw := range fallbackRates {
		rates[code] = decimal.RequireFromString(raw)
	}
	if baseRate, ok := rates[base]; ok && !baseRate.Equal(decimal.NewFromInt(1)) {
		for code, r := range rates {
			rates[code] = r.Div(baseRate)
		}
	}
	rates[base] = decimal.NewFromInt(1)
	return &RateTable{
		Base:      base,
		Rates:     rates,
		FetchedAt: now,
		// Fallback tables are always stale so the refresher keeps trying.
		ExpiresAt: now,
		Source:    RateSourceFallback,
	}
}
