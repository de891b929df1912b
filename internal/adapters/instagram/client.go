package instagram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	"github.com/SscSPs/storefront_backend/internal/dto"
)

// ErrNotConfigured is returned when no access token is set.
var ErrNotConfigured = errors.New("instagram access token not configured")

// timestampLayout is the Graph API's timestamp format, e.g. 2024-05-01T10:00:00+0000.
const timestampLayout = "2006-01-02T15:04:05-0700"

const mediaFields = "id,caption,media_type,media_url,thumbnail_url,permalink,timestamp"

// Client lists media of the account owning the access token via the Instagram Graph API.
type Client struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

var _ gateways.SocialGateway = (*Client)(nil)

// New constructs a Client.
func New(baseURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      &http.Client{Timeout: timeout},
	}
}

type media struct {
	ID           string `json:"id"`
	Caption      string `json:"caption"`
	MediaType    string `json:"media_type"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Permalink    string `json:"permalink"`
	Timestamp    string `json:"timestamp"`
}

type mediaResponse struct {
	Data  []media `json:"data"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// RecentPosts returns up to limit of the newest media items.
func (c *Client) RecentPosts(ctx context.Context, limit int) ([]dto.SocialPost, error) {
	if c.accessToken == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("fields", mediaFields)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("access_token", c.accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/me/media?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		// the request URL carries the token; report only the cause
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	var body mediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding json (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || body.Error != nil {
		if body.Error != nil {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, body.Error.Message)
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	posts := make([]dto.SocialPost, 0, len(body.Data))
	for _, m := range body.Data {
		if len(posts) == limit {
			break
		}
		post := dto.SocialPost{
			ID:           m.ID,
			Caption:      m.Caption,
			MediaType:    m.MediaType,
			MediaURL:     m.MediaURL,
			ThumbnailURL: m.ThumbnailURL,
			Permalink:    m.Permalink,
		}
		if ts, err := time.Parse(timestampLayout, m.Timestamp); err == nil {
			post.Timestamp = ts.UTC()
		}
		posts = append(posts, post)
	}
	return posts, nil
}
