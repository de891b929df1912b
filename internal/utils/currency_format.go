package utils

import (
	"math/big"
	"strings"

	"github.com/SscSPs/storefront_backend/internal/core/domain"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RoundToCurrency rounds half away from zero to the currency's decimal places.
// Example: 2.5 JPY (0 places) becomes 3, 12.345 USD (2 places) becomes 12.35.
func RoundToCurrency(amount decimal.Decimal, currency domain.Currency) decimal.Decimal {
	return amount.Round(currency.DecimalPlaces)
}

// FormatWithCurrencyPrecision renders the amount with the currency's separators and
// precision, without a symbol. The digits come from the decimal itself, so amounts
// of any size keep every digit.
// Example: 1234.5 with USD returns "1,234.50", 1234.5 with JPY returns "1,235".
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	rounded := RoundToCurrency(amount, currency)
	thousands, dec := separators(currency)

	fixed := rounded.Abs().StringFixed(currency.DecimalPlaces)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	whole, _ := new(big.Int).SetString(intPart, 10)

	out := strings.ReplaceAll(humanize.BigComma(whole), ",", thousands)
	if fracPart != "" {
		out += dec + fracPart
	}
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

// FormatCurrency renders the amount with its symbol in the currency's position.
// Example: 1234.5 with USD returns "$1,234.50", 10 with CHF returns "10.00 CHF".
func FormatCurrency(amount decimal.Decimal, currency domain.Currency) string {
	number := FormatWithCurrencyPrecision(amount, currency)
	if currency.Symbol == "" {
		return number
	}
	if currency.SymbolPosition == domain.SymbolSuffix {
		return number + " " + currency.Symbol
	}
	if strings.HasPrefix(number, "-") {
		return "-" + currency.Symbol + strings.TrimPrefix(number, "-")
	}
	return currency.Symbol + number
}

// separators returns the currency's thousands and decimal separators, with
// defaults when they are unset or identical.
func separators(currency domain.Currency) (thousands, dec string) {
	thousands = currency.ThousandsSeparator
	if thousands == "" {
		thousands = ","
	}
	dec = currency.DecimalSeparator
	if dec == "" || dec == thousands {
		dec = "."
		if thousands == "." {
			dec = ","
		}
	}
	return thousands, dec
}
