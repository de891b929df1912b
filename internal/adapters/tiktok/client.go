package tiktok

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/storefront_backend/internal/core/ports/gateways"
	"github.com/SscSPs/storefront_backend/internal/dto"
	"golang.org/x/net/html"
)

// ErrNotConfigured is returned when no username is set.
var ErrNotConfigured = errors.New("tiktok username not configured")

// ErrNoPageData is returned when the profile page carries no embedded state.
var ErrNoPageData = errors.New("tiktok profile page has no embedded data")

// stateScriptIDs are the script elements TikTok embeds its page state in.
var stateScriptIDs = map[string]bool{
	"__UNIVERSAL_DATA_FOR_REHYDRATION__": true,
	"SIGI_STATE":                         true,
}

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// maxPageBytes bounds how much of the profile page is read.
const maxPageBytes = 8 << 20

// Client reads the public profile page and extracts videos from the embedded state JSON.
// There is no official API for this; the page layout may change without notice.
type Client struct {
	baseURL  string
	username string
	client   *http.Client
}

var _ gateways.SocialGateway = (*Client)(nil)

// New constructs a Client for the given profile.
func New(baseURL, username string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		client:   &http.Client{Timeout: timeout},
	}
}

// RecentPosts returns up to limit videos, newest first.
func (c *Client) RecentPosts(ctx context.Context, limit int) ([]dto.SocialPost, error) {
	if c.username == "" {
		return nil, ErrNotConfigured
	}

	profileURL := c.baseURL + "/@" + url.PathEscape(c.username)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := extractState(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var state any
	if err := dec.Decode(&state); err != nil {
		return nil, fmt.Errorf("decoding embedded json: %w", err)
	}

	posts := collectVideos(state, profileURL)
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Timestamp.After(posts[j].Timestamp) })
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// extractState returns the text of the first state script element.
func extractState(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var found string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "script" {
			for _, a := range n.Attr {
				if a.Key == "id" && stateScriptIDs[a.Val] && n.FirstChild != nil {
					found = n.FirstChild.Data
					return true
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if walk(child) {
				return true
			}
		}
		return false
	}
	if !walk(doc) || strings.TrimSpace(found) == "" {
		return "", ErrNoPageData
	}
	return found, nil
}

// collectVideos walks the state tree and picks up every object shaped like a
// video item: a string id and desc plus a video object.
func collectVideos(node any, profileURL string) []dto.SocialPost {
	seen := map[string]bool{}
	var posts []dto.SocialPost

	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case map[string]any:
			if post, ok := toPost(t, profileURL); ok && !seen[post.ID] {
				seen[post.ID] = true
				posts = append(posts, post)
				return
			}
			for _, child := range t {
				walk(child)
			}
		case []any:
			for _, child := range t {
				walk(child)
			}
		}
	}
	walk(node)
	return posts
}

func toPost(item map[string]any, profileURL string) (dto.SocialPost, bool) {
	id, ok := item["id"].(string)
	if !ok || id == "" {
		return dto.SocialPost{}, false
	}
	desc, ok := item["desc"].(string)
	if !ok {
		return dto.SocialPost{}, false
	}
	video, ok := item["video"].(map[string]any)
	if !ok {
		return dto.SocialPost{}, false
	}

	post := dto.SocialPost{
		ID:        id,
		Caption:   desc,
		MediaType: "VIDEO",
		Permalink: profileURL + "/video/" + id,
	}
	post.ThumbnailURL, _ = video["cover"].(string)
	post.MediaURL, _ = video["playAddr"].(string)
	if secs, ok := unixSeconds(item["createTime"]); ok {
		post.Timestamp = time.Unix(secs, 0).UTC()
	}
	return post, true
}

func unixSeconds(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		return n, err == nil
	}
	return 0, false
}
