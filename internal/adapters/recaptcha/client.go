package recaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	"github.com/SscSPs/storefront_backend/internal/dto"
)

// ErrNotConfigured is returned when no secret is set.
var ErrNotConfigured = errors.New("recaptcha secret not configured")

// Client calls Google's siteverify endpoint.
type Client struct {
	verifyURL string
	secret    string
	client    *http.Client
}

var _ gateways.RecaptchaGateway = (*Client)(nil)

// New constructs a Client.
func New(verifyURL, secret string, timeout time.Duration) *Client {
	return &Client{
		verifyURL: verifyURL,
		secret:    secret,
		client:    &http.Client{Timeout: timeout},
	}
}

type siteVerifyResponse struct {
	Success     bool      `json:"success"`
	Score       float64   `json:"score"`
	Action      string    `json:"action"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	ErrorCodes  []string  `json:"error-codes"`
}

// SiteVerify checks token with Google. A token Google rejects is not an error;
// the verdict is reported in the response.
func (c *Client) SiteVerify(ctx context.Context, token, remoteIP string) (*dto.VerifyRecaptchaResponse, error) {
	if c.secret == "" {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return &dto.VerifyRecaptchaResponse{
		Success:     body.Success,
		Score:       body.Score,
		Action:      body.Action,
		Hostname:    body.Hostname,
		ChallengeTS: body.ChallengeTS,
		ErrorCodes:  body.ErrorCodes,
	}, nil
}
