package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/seoscan"
)

// Ensure SitemapService implements seoscan.URLSource at compile time.
var _ seoscan.URLSource = (*SitemapService)(nil)

// SitemapService lists the pages of a site from its sitemaps.
type SitemapService struct {
	client *http.Client

	// Limit caps the number of URLs returned. Zero means no limit.
	Limit int
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// Discover returns the page URLs listed in the sitemaps of siteURL.
//
// A siteURL ending in .xml is read as a sitemap itself. Otherwise sitemaps
// are taken from the Sitemap: lines of robots.txt, falling back to
// /sitemap.xml. Sitemap indexes are followed and URLs are deduplicated in
// first-seen order. When siteURL has a path, only URLs under that path are
// kept. Returns ENOTFOUND when the site has no sitemap.
func (s *SitemapService) Discover(ctx context.Context, siteURL string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := url.Parse(siteURL)
	if err != nil || site.Host == "" {
		return nil, seoscan.Errorf(seoscan.EINVALID, "invalid site URL %q", siteURL)
	}

	var (
		roots  []string
		prefix string
	)
	if strings.HasSuffix(strings.ToLower(site.Path), ".xml") {
		roots = []string{site.String()}
	} else {
		prefix = strings.TrimSuffix(site.Path, "/")
		roots, err = s.locateSitemaps(ctx, site)
		if err != nil {
			return nil, err
		}
	}
	if len(roots) == 0 {
		return nil, seoscan.Errorf(seoscan.ENOTFOUND, "no sitemap found for %s", siteURL)
	}

	w := &sitemapWalker{
		svc:     s,
		visited: make(map[string]bool),
		seen:    make(map[string]bool),
		prefix:  prefix,
		limit:   s.Limit,
	}
	for _, root := range roots {
		if err := w.walk(ctx, root); err != nil {
			return nil, err
		}
		if w.full() {
			break
		}
	}
	return w.urls, nil
}

// locateSitemaps reads Sitemap: lines from robots.txt and falls back to
// /sitemap.xml when there are none.
func (s *SitemapService) locateSitemaps(ctx context.Context, site *url.URL) ([]string, error) {
	root := &url.URL{Scheme: site.Scheme, Host: site.Host}

	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if body, err := s.get(ctx, robots); err == nil {
		sitemaps, err := sitemapDirectives(body)
		body.Close()
		if err != nil {
			return nil, err
		}
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	ok, err := s.exists(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return []string{fallback}, nil
}

// sitemapDirectives returns the Sitemap: lines of a robots.txt body.
func sitemapDirectives(r io.Reader) ([]string, error) {
	const directive = "sitemap:"

	var sitemaps []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) < len(directive) || !strings.EqualFold(line[:len(directive)], directive) {
			continue
		}
		if u := strings.TrimSpace(line[len(directive):]); u != "" {
			sitemaps = append(sitemaps, u)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}
	return sitemaps, nil
}

// sitemapWalker collects page URLs across a tree of sitemaps.
type sitemapWalker struct {
	svc     *SitemapService
	visited map[string]bool // sitemaps already read
	seen    map[string]bool // page URLs already collected
	prefix  string
	limit   int
	urls    []string
}

func (w *sitemapWalker) full() bool {
	return w.limit > 0 && len(w.urls) >= w.limit
}

func (w *sitemapWalker) walk(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.visited[sitemapURL] || w.full() {
		return nil
	}
	w.visited[sitemapURL] = true

	body, err := w.svc.get(ctx, sitemapURL)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return seoscan.Errorf(seoscan.EUNAVAILABLE, "fetch sitemap %s: %v", sitemapURL, err)
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return seoscan.Errorf(seoscan.EINVALID, "parse sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return seoscan.Errorf(seoscan.EINVALID, "empty sitemap %s", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		for _, loc := range locs(root, "sitemap") {
			if err := w.walk(ctx, loc); err != nil {
				return err
			}
		}
		return nil
	}

	for _, loc := range locs(root, "url") {
		if w.full() {
			break
		}
		if w.seen[loc] || !underPath(loc, w.prefix) {
			continue
		}
		w.seen[loc] = true
		w.urls = append(w.urls, loc)
	}
	return nil
}

// locs returns the <loc> text of every child element with the given tag.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// underPath reports whether rawURL's path is prefix or lies below it.
// /docs matches /docs and /docs/intro but not /documentation.
func underPath(rawURL, prefix string) bool {
	if prefix == "" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	p := strings.TrimSuffix(u.Path, "/")
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
