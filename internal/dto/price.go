package dto

import (
	"github.com/shopspring/decimal"
)

// ConvertPriceParams are the query parameters of the convert endpoint.
// Amount is kept as a string and parsed into a decimal by the handler.
type ConvertPriceParams struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"omitempty,currency_code"`
	To     string `form:"to" binding:"omitempty,currency_code"`
}

// ConvertPriceResponse is the result of converting one amount.
type ConvertPriceResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted decimal.Decimal `json:"converted"`
	Formatted string          `json:"formatted"`
}

// DisplayPriceItem is one product's base-currency pricing.
type DisplayPriceItem struct {
	ProductID string           `json:"productID" binding:"required"`
	Price     decimal.Decimal  `json:"price"`
	SalePrice *decimal.Decimal `json:"salePrice,omitempty"`
	MinPrice  *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice  *decimal.Decimal `json:"maxPrice,omitempty"`
}

// DisplayPricesRequest asks for display strings for a batch of products.
// An empty Currency means the shopper's selected currency.
type DisplayPricesRequest struct {
	Currency string             `json:"currency" binding:"omitempty,currency_code"`
	Items    []DisplayPriceItem `json:"items" binding:"required,min=1,max=200,dive"`
}

// DisplayPrice holds the rendered strings for one product.
type DisplayPrice struct {
	ProductID          string `json:"productID"`
	Price              string `json:"price"`
	SalePrice          string `json:"salePrice,omitempty"`
	DiscountPercentage int    `json:"discountPercentage"`
	PriceRange         string `json:"priceRange,omitempty"`
}

// DisplayPricesResponse wraps the rendered prices.
type DisplayPricesResponse struct {
	Currency string         `json:"currency"`
	Items    []DisplayPrice `json:"items"`
}
