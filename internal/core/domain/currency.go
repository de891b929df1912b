package domain

import (
	"fmt"
	"strings"
)

// SymbolPosition says where the currency symbol is placed relative to the amount.
type SymbolPosition string

const (
	SymbolPrefix SymbolPosition = "PREFIX"
	SymbolSuffix SymbolPosition = "SUFFIX"
)

// Currency represents a currency the storefront can display prices in.
type Currency struct {
	CurrencyCode       string         `json:"currencyCode"`  // Primary Key (e.g., "USD")
	Name               string         `json:"name"`          // e.g., "US Dollar"
	Symbol             string         `json:"symbol"`        // e.g., "$"
	DecimalPlaces      int32          `json:"decimalPlaces"` // 0 for JPY/KRW, 2 otherwise
	SymbolPosition     SymbolPosition `json:"symbolPosition"`
	ThousandsSeparator string         `json:"thousandsSeparator"`
	DecimalSeparator   string         `json:"decimalSeparator"`
}

// DefaultCurrencies is the fixed set of currencies the storefront supports.
// It is never mutated at runtime.
var DefaultCurrencies = []Currency{
	{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, SymbolPosition: SymbolPrefix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", DecimalPlaces: 2, SymbolPosition: SymbolPrefix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "GBP", Name: "British Pound", Symbol: "£", DecimalPlaces: 2, SymbolPosition: SymbolPrefix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "CAD", Name: "Canadian Dollar", Symbol: "CA$", DecimalPlaces: 2, SymbolPosition: SymbolPrefix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "AUD", Name: "Australian Dollar", Symbol: "A$", DecimalPlaces: 2, SymbolPosition: SymbolPrefix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "JPY", Name: "Japanese Yen", Symbol: "¥", DecimalPlaces: 0, SymbolPosition: SymbolPrefix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "KRW", Name: "South Korean Won", Symbol: "₩", DecimalPlaces: 0, SymbolPosition: SymbolPrefix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "CHF", Name: "Swiss Franc", Symbol: "CHF", DecimalPlaces: 2, SymbolPosition: SymbolSuffix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "SEK", Name: "Swedish Krona", Symbol: "kr", DecimalPlaces: 2, SymbolPosition: SymbolSuffix, ThousandsSeparator: ",", DecimalSeparator: "."},
	{CurrencyCode: "INR", Name: "Indian Rupee", Symbol: "₹", DecimalPlaces: 2, SymbolPosition: SymbolPrefix, ThousandsSeparator: ",", DecimalSeparator: "."},
}

// CurrencyCatalog is an immutable, ordered lookup of supported currencies with one base currency.
type CurrencyCatalog struct {
	base       Currency
	currencies []Currency
	byCode     map[string]Currency
}

// NewCurrencyCatalog builds a catalog. The base code must be one of the given currencies.
func NewCurrencyCatalog(baseCode string, currencies []Currency) (*CurrencyCatalog, error) {
	if len(currencies) == 0 {
		return nil, fmt.Errorf("currency catalog cannot be empty")
	}
	c := &CurrencyCatalog{
		currencies: make([]Currency, 0, len(currencies)),
		byCode:     make(map[string]Currency, len(currencies)),
	}
	for _, cur := range currencies {
		code := strings.ToUpper(cur.CurrencyCode)
		if _, dup := c.byCode[code]; dup {
			return nil, fmt.Errorf("duplicate currency code %s in catalog", code)
		}
		cur.CurrencyCode = code
		c.byCode[code] = cur
		c.currencies = append(c.currencies, cur)
	}
	base, ok := c.byCode[strings.ToUpper(baseCode)]
	if !ok {
		return nil, fmt.Errorf("base currency %q is not in the catalog", baseCode)
	}
	c.base = base
	return c, nil
}

// Base returns the currency all catalog prices are authored in.
func (c *CurrencyCatalog) Base() Currency {
	return c.base
}

// Lookup finds a currency by code, case-insensitively.
func (c *CurrencyCatalog) Lookup(code string) (Currency, bool) {
	cur, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return cur, ok
}

// Currencies returns a copy of the catalog in declaration order.
func (c *CurrencyCatalog) Currencies() []Currency {
	out := make([]Currency, len(c.currencies))
	copy(out, c.currencies)
	return out
}

// Codes returns the currency codes in declaration order.
func (c *CurrencyCatalog) Codes() []string {
	codes := make([]string, len(c.currencies))
	for i, cur := range c.currencies {
		codes[i] = cur.CurrencyCode
	}
	return codes
}
