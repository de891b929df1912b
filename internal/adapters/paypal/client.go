package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrNotConfigured is returned when client credentials are missing.
var ErrNotConfigured = errors.New("paypal client credentials not configured")

// Client calls the PayPal Orders v2 API. Access tokens are obtained with the
// OAuth2 client credentials grant and cached until they expire.
type Client struct {
	baseURL    string
	configured bool
	client     *http.Client
}

var _ gateways.PayPalGateway = (*Client)(nil)

// New constructs a Client. An empty clientID or clientSecret leaves it unconfigured.
func New(baseURL, clientID, clientSecret string, timeout time.Duration) *Client {
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + "/v1/oauth2/token",
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})
	httpClient := cc.Client(tokenCtx)
	httpClient.Timeout = timeout

	return &Client{
		baseURL:    baseURL,
		configured: clientID != "" && clientSecret != "",
		client:     httpClient,
	}
}

type amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type purchaseUnit struct {
	ReferenceID string `json:"reference_id,omitempty"`
	Description string `json:"description,omitempty"`
	Amount      amount `json:"amount"`
}

type createOrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []purchaseUnit `json:"purchase_units"`
}

type orderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Payer  struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
	Links []dto.PayPalLink `json:"links"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// CreateOrder creates a CAPTURE-intent order with a single purchase unit.
func (c *Client) CreateOrder(ctx context.Context, params gateways.PayPalOrderParams) (*dto.PayPalOrderResponse, error) {
	body := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: params.ReferenceID,
			Description: params.Description,
			Amount:      amount{CurrencyCode: params.Currency, Value: params.Value},
		}},
	}
	return c.post(ctx, "/v2/checkout/orders", body)
}

// CaptureOrder captures payment for an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error) {
	return c.post(ctx, "/v2/checkout/orders/"+url.PathEscape(orderID)+"/capture", struct{}{})
}

func (c *Client) post(ctx context.Context, path string, payload any) (*dto.PayPalOrderResponse, error) {
	if !c.configured {
		return nil, ErrNotConfigured
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var e errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Message != "" {
			return nil, fmt.Errorf("status %d: %s: %s", resp.StatusCode, e.Name, e.Message)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return &dto.PayPalOrderResponse{
		ID:         order.ID,
		Status:     order.Status,
		PayerEmail: order.Payer.EmailAddress,
		Links:      order.Links,
	}, nil
}
