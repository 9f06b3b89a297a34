package seoscan

import (
	"net/url"
	"strings"
)

// Link represents an anchor found in a page's HTML.
type Link struct {
	URL  string // href value as written, possibly relative
	Rel  string // raw rel attribute, may be empty
	Text string // visible text with nested tags stripped
}

// IsInternal reports whether the link points at the same host as pageURL.
// Links without a host (relative links) are internal.
func (l Link) IsInternal(pageURL string) bool {
	host := hostOf(l.URL)
	return host == "" || strings.EqualFold(host, hostOf(pageURL))
}

// IsNofollow reports whether the rel attribute asks crawlers not to follow the link.
func (l Link) IsNofollow() bool {
	return strings.Contains(strings.ToLower(l.Rel), "nofollow")
}

// hostOf returns the host of rawURL. URLs that net/url rejects, such as
// ones with a bad percent escape in the path, still yield the authority
// written between "//" and the next "/", "?" or "#".
func hostOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil {
		return u.Host
	}
	_, rest, ok := strings.Cut(rawURL, "//")
	if !ok {
		return ""
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		rest = rest[i+1:]
	}
	return rest
}

// Image represents an img tag found in a page's HTML.
type Image struct {
	Src    string // resolved against the page URL
	Alt    string
	HasAlt bool // alt attribute present and non-empty
	Width  string
	Height string
	Srcset string
}

// MetaTag is a meta tag exposing both name and content attributes.
type MetaTag struct {
	Name    string
	Content string
}

// SchemaBlock is a parsed JSON-LD document.
type SchemaBlock struct {
	Value any
}

// Type returns the block's @type. Blocks without a usable @type report "Unknown".
func (b SchemaBlock) Type() string {
	obj, ok := b.Value.(map[string]any)
	if !ok {
		return "Unknown"
	}
	switch t := obj["@type"].(type) {
	case string:
		if t != "" {
			return t
		}
	case []any:
		var parts []string
		for _, v := range t {
			if s, ok := v.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "/")
		}
	}
	return "Unknown"
}

// HreflangEntry links a language code to an alternate page URL.
type HreflangEntry struct {
	Language string
	URL      string
}

// Headings holds the text of each H1, H2 and H3 in document order.
type Headings struct {
	H1 []string
	H2 []string
	H3 []string
}

// Extraction bundles the results of every extraction pass over one page.
type Extraction struct {
	Headings  Headings
	H1Count   int
	H2Count   int
	H3Count   int
	Links     []Link
	Images    []Image
	MetaTags  []MetaTag
	Schema    []SchemaBlock
	Canonical string // empty when no canonical link was found
	Hreflang  []HreflangEntry
}
