// Package goquery reads page metadata out of HTML with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/seoscan"
)

// Ensure MetadataExtractor implements seoscan.MetadataExtractor at compile time.
var _ seoscan.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor fills seoscan.Metadata from a page's head: the title,
// the named meta tags, Open Graph properties and the canonical link.
// The first occurrence of each tag wins.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata parses html and returns its metadata. Missing fields are empty.
func (e *MetadataExtractor) ExtractMetadata(html string) (*seoscan.Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, seoscan.Errorf(seoscan.EINVALID, "failed to parse HTML: %v", err)
	}

	return &seoscan.Metadata{
		Title:         strings.TrimSpace(doc.Find("title").First().Text()),
		Description:   metaContent(doc, "name", "description"),
		Keywords:      metaContent(doc, "name", "keywords"),
		Robots:        metaContent(doc, "name", "robots"),
		Viewport:      metaContent(doc, "name", "viewport"),
		Canonical:     canonical(doc),
		OGTitle:       metaContent(doc, "property", "og:title"),
		OGDescription: metaContent(doc, "property", "og:description"),
		OGImage:       metaContent(doc, "property", "og:image"),
	}, nil
}

// metaContent returns the content of the first meta tag whose attr equals
// value, compared case-insensitively.
func metaContent(doc *goquery.Document, attr, value string) string {
	var content string
	doc.Find("meta[" + attr + "]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		v, _ := sel.Attr(attr)
		if !strings.EqualFold(strings.TrimSpace(v), value) {
			return true
		}
		content, _ = sel.Attr("content")
		content = strings.TrimSpace(content)
		return false
	})
	return content
}

func canonical(doc *goquery.Document) string {
	var href string
	doc.Find("link[rel][href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel, _ := sel.Attr("rel")
		for _, r := range strings.Fields(rel) {
			if strings.EqualFold(r, "canonical") {
				href, _ = sel.Attr("href")
				href = strings.TrimSpace(href)
				return false
			}
		}
		return true
	})
	return href
}
