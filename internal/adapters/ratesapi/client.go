package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
)

// ProviderName is recorded as the source of snapshots fetched by this client.
const ProviderName = "open-er-api"

// Client talks to an open exchange-rate API of the form GET {url}/{base}.
type Client struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

var _ gateways.RatesProvider = (*Client)(nil)

// New constructs a Client with the given request timeout.
func New(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type latestResponse struct {
	Result             string                     `json:"result"`
	ErrorType          string                     `json:"error-type"`
	BaseCode           string                     `json:"base_code"`
	TimeLastUpdateUnix int64                      `json:"time_last_update_unix"`
	Rates              map[string]decimal.Decimal `json:"rates"`
}

// Name implements gateways.RatesProvider.
func (c *Client) Name() string {
	return ProviderName
}

// LatestRates loads the current rates for base.
func (c *Client) LatestRates(ctx context.Context, base string) (map[string]decimal.Decimal, time.Time, error) {
	url := fmt.Sprintf("%s/%s", c.url, base)
	c.logger.Debug("loading exchange rates", slog.String("base", base), slog.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("building http request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, time.Time{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding json: %w", err)
	}
	if body.Result != "success" {
		return nil, time.Time{}, fmt.Errorf("provider returned %q: %s", body.Result, body.ErrorType)
	}
	if body.BaseCode != "" && body.BaseCode != base {
		return nil, time.Time{}, fmt.Errorf("provider returned base %s, want %s", body.BaseCode, base)
	}

	updated := time.Now()
	if body.TimeLastUpdateUnix > 0 {
		updated = time.Unix(body.TimeLastUpdateUnix, 0).UTC()
	}
	return body.Rates, updated, nil
}
