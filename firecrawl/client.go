// Package firecrawl implements seoscan.Scraper on top of the Firecrawl scrape API.
package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/seoscan"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// maxErrorBody limits how much of a failed response is kept in the error.
const maxErrorBody = 512

// Config holds the credentials and endpoint of the API.
type Config struct {
	APIKey  string
	BaseURL string
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return seoscan.Errorf(seoscan.EINVALID, "Firecrawl API key required")
	}
	return nil
}

// Ensure Client implements seoscan.Scraper at compile time.
var _ seoscan.Scraper = (*Client)(nil)

// Client scrapes pages through the Firecrawl API.
// Requests are never retried.
type Client struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for API requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit limits requests to rps per second. Zero or less disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a Client. It returns EINVALID when cfg has no API key.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	c := &Client{
		cfg:    cfg,
		client: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type scrapeRequest struct {
	URL             string   `json:"url"`
	Formats         []string `json:"formats"`
	OnlyMainContent bool     `json:"onlyMainContent"`
	BlockAds        bool     `json:"blockAds"`
	StoreInCache    bool     `json:"storeInCache"`
}

type scrapeResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error,omitempty"`
	Data    document `json:"data"`
}

type document struct {
	Markdown string   `json:"markdown"`
	RawHTML  string   `json:"rawHtml"`
	Metadata metadata `json:"metadata"`
}

// metadata mirrors the page's meta tags. Values are strings, or arrays
// when a page repeats a tag.
type metadata map[string]any

// Scrape renders url through the API and returns its Markdown, raw HTML and
// metadata. Any transport failure, non-200 status or unsuccessful response is
// EUNAVAILABLE.
func (c *Client) Scrape(ctx context.Context, url string) (*seoscan.ScrapeResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	body, err := json.Marshal(scrapeRequest{
		URL:             url,
		Formats:         []string{"markdown", "rawHtml"},
		OnlyMainContent: false,
		BlockAds:        true,
		StoreInCache:    true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v1/scrape", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, seoscan.Errorf(seoscan.EUNAVAILABLE, "scrape %s: %v", url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EUNAVAILABLE, "scrape %s: read response: %v", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, seoscan.Errorf(seoscan.EUNAVAILABLE, "scrape %s: API returned HTTP %d: %s",
			url, resp.StatusCode, snippet(data))
	}

	var sr scrapeResponse
	if err := json.Unmarshal(data, &sr); err != nil {
		return nil, seoscan.Errorf(seoscan.EUNAVAILABLE, "scrape %s: decode response: %v", url, err)
	}
	if !sr.Success {
		msg := sr.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, seoscan.Errorf(seoscan.EUNAVAILABLE, "scrape %s: API request failed: %s", url, msg)
	}

	return &seoscan.ScrapeResult{
		Metadata:   sr.Data.Metadata.toMetadata(),
		Markdown:   sr.Data.Markdown,
		RawHTML:    sr.Data.RawHTML,
		StatusCode: resp.StatusCode,
		Elapsed:    elapsed,
	}, nil
}

func (m metadata) toMetadata() seoscan.Metadata {
	return seoscan.Metadata{
		Title:         m.text("title"),
		Description:   m.text("description"),
		Keywords:      m.text("keywords"),
		Robots:        m.text("robots"),
		Viewport:      m.text("viewport"),
		Canonical:     m.text("canonical"),
		OGTitle:       m.text("ogTitle"),
		OGDescription: m.text("ogDescription"),
		OGImage:       m.text("ogImage"),
		StatusCode:    m.number("statusCode"),
	}
}

// text returns the value for key. Repeated tags report their first value.
func (m metadata) text(key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				return s
			}
		}
	}
	return ""
}

func (m metadata) number(key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return 0
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	return s
}
