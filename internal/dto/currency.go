package dto

import (
	"github.com/SscSPs/storefront_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode   string `json:"currencyCode"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	DecimalPlaces  int32  `json:"decimalPlaces"`
	SymbolPosition string `json:"symbolPosition"`
	IsBase         bool   `json:"isBase"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency, baseCode string) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:   curr.CurrencyCode,
		Name:           curr.Name,
		Symbol:         curr.Symbol,
		DecimalPlaces:  curr.DecimalPlaces,
		SymbolPosition: string(curr.SymbolPosition),
		IsBase:         curr.CurrencyCode == baseCode,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency, baseCode string) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr, baseCode)
	}
	return res
}

// SelectCurrencyRequest is the body for changing the shopper's display currency.
type SelectCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currency_code"`
}

// CurrencyPreferenceResponse reports the currency prices are displayed in.
type CurrencyPreferenceResponse struct {
	Currency  CurrencyResponse `json:"currency"`
	IsDefault bool             `json:"isDefault"`
}
