// Package http provides seoscan services that talk to websites directly:
// a Scraper for static pages and a sitemap-based URLSource.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/seoscan"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// UserAgent identifies seoscan to the sites it fetches.
const UserAgent = "seoscan/1.0 (+https://github.com/fwojciec/seoscan)"

// Ensure Scraper implements seoscan.Scraper at compile time.
var _ seoscan.Scraper = (*Scraper)(nil)

// Scraper fetches pages with plain HTTP requests. It does not execute
// JavaScript, so it only sees what the server sends.
type Scraper struct {
	// Metadata reads title, meta tags and canonical from the page.
	Metadata seoscan.MetadataExtractor

	// Converter renders the page as Markdown for heading extraction.
	Converter seoscan.Converter

	client  *http.Client
	timeout time.Duration
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.timeout = d
	}
}

// WithHTTPClient sets the HTTP client. Its timeout takes precedence over WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) {
		s.client = c
	}
}

// NewScraper creates a new HTTP-based Scraper.
func NewScraper(metadata seoscan.MetadataExtractor, converter seoscan.Converter, opts ...Option) *Scraper {
	s := &Scraper{
		Metadata:  metadata,
		Converter: converter,
		timeout:   DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{
			Timeout: s.timeout,
		}
	}

	return s
}

// Scrape fetches url and derives Markdown and metadata from its HTML.
// Transport failures and non-200 responses are EUNAVAILABLE.
func (s *Scraper) Scrape(ctx context.Context, url string) (*seoscan.ScrapeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, seoscan.Errorf(seoscan.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, seoscan.Errorf(seoscan.EUNAVAILABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EUNAVAILABLE, "fetch %s: read body: %v", url, err)
	}
	elapsed := time.Since(start)

	md, err := s.Metadata.ExtractMetadata(body)
	if err != nil {
		return nil, fmt.Errorf("extract metadata: %w", err)
	}
	md.StatusCode = resp.StatusCode

	var markdown string
	if body != "" {
		markdown, err = s.Converter.Convert(body)
		if err != nil {
			return nil, fmt.Errorf("convert to markdown: %w", err)
		}
	}

	return &seoscan.ScrapeResult{
		Metadata:   *md,
		Markdown:   markdown,
		RawHTML:    body,
		StatusCode: resp.StatusCode,
		Elapsed:    elapsed,
	}, nil
}

// decodeBody reads the response as UTF-8, transcoding from the charset
// declared in the Content-Type header or the document itself.
// An empty body decodes to "".
func decodeBody(resp *http.Response) (string, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", nil
	}
	r, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
