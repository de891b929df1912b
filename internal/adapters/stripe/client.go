package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	"github.com/SscSPs/storefront_backend/internal/dto"
)

// ErrNotConfigured is returned when no secret key is set.
var ErrNotConfigured = errors.New("stripe secret key not configured")

// Client calls the Stripe REST API with a server-held secret key.
type Client struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

var _ gateways.StripeGateway = (*Client)(nil)

// New constructs a Client.
func New(baseURL, secretKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: timeout},
	}
}

type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type errorEnvelope struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentIntent posts a form-encoded payment intent request.
func (c *Client) CreatePaymentIntent(ctx context.Context, params gateways.StripePaymentIntentParams) (*dto.PaymentIntentResponse, error) {
	if c.secretKey == "" {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(params.Amount, 10))
	form.Set("currency", strings.ToLower(params.Currency))
	form.Set("automatic_payment_methods[enabled]", "true")
	if params.Description != "" {
		form.Set("description", params.Description)
	}
	if params.ReceiptEmail != "" {
		form.Set("receipt_email", params.ReceiptEmail)
	}
	for k, v := range params.Metadata {
		form.Set("metadata["+k+"]", v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var env errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error.Message != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, env.Error.Message)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var pi paymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&pi); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return &dto.PaymentIntentResponse{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       pi.Status,
		Amount:       pi.Amount,
		Currency:     strings.ToUpper(pi.Currency),
	}, nil
}
