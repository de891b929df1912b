package pricing

import (
	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/SscSPs/storefront_backend/internal/utils"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Convert re-expresses price from one currency to another using the table:
// price * rate[to] / rate[from]. A rate the table does not have counts as 1, so
// prices stay visible when the pricing service is degraded.
func Convert(table *domain.RateTable, price decimal.Decimal, fromCode, toCode string) decimal.Decimal {
	if fromCode == toCode || price.IsZero() {
		return price
	}
	fromRate := table.RateOrIdentity(fromCode)
	toRate := table.RateOrIdentity(toCode)
	return price.Mul(toRate).Div(fromRate)
}

// DiscountPercentage returns round((original - sale) / original * 100) in 0..100.
// It is 0 when there is no discount or the original price is not positive.
func DiscountPercentage(original, sale decimal.Decimal) int {
	if !original.IsPositive() || sale.GreaterThanOrEqual(original) {
		return 0
	}
	pct := original.Sub(sale).Div(original).Mul(hundred).Round(0)
	if pct.GreaterThan(hundred) {
		return 100
	}
	return int(pct.IntPart())
}

// FormatRange renders min and max in currency. When both round to the same
// value a single formatted value is returned, otherwise "<min> - <max>".
func FormatRange(minAmount, maxAmount decimal.Decimal, currency domain.Currency) string {
	lo := utils.RoundToCurrency(minAmount, currency)
	hi := utils.RoundToCurrency(maxAmount, currency)
	if lo.Equal(hi) {
		return utils.FormatCurrency(lo, currency)
	}
	return utils.FormatCurrency(lo, currency) + " - " + utils.FormatCurrency(hi, currency)
}
