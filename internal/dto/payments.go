package dto

import (
	"github.com/shopspring/decimal"
)

// CreatePaymentIntentRequest asks Stripe for a payment intent.
// Amount is in major units of Currency (e.g. 19.99 USD).
type CreatePaymentIntentRequest struct {
	Amount       decimal.Decimal   `json:"amount"`
	Currency     string            `json:"currency" binding:"required,currency_code"`
	Description  string            `json:"description" binding:"max=500"`
	ReceiptEmail string            `json:"receiptEmail" binding:"omitempty,email"`
	Metadata     map[string]string `json:"metadata" binding:"max=20"`
}

// PaymentIntentResponse is the subset of a Stripe payment intent the browser needs.
type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// CreatePayPalOrderRequest asks PayPal to create a checkout order.
type CreatePayPalOrderRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" binding:"required,currency_code"`
	ReferenceID string          `json:"referenceID" binding:"max=256"`
	Description string          `json:"description" binding:"max=127"`
}

// PayPalLink is a HATEOAS link returned by PayPal.
type PayPalLink struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// PayPalOrderResponse is the order state returned by PayPal after create or capture.
type PayPalOrderResponse struct {
	ID         string       `json:"id"`
	Status     string       `json:"status"`
	PayerEmail string       `json:"payerEmail,omitempty"`
	Links      []PayPalLink `json:"links,omitempty"`
}
