package pattern

import "github.com/fwojciec/seoscan"

// Extract runs every extraction pass over a page.
// Headings come from the Markdown; everything else from the raw HTML.
func Extract(html, markdown, baseURL string) *seoscan.Extraction {
	x := &seoscan.Extraction{
		Headings: ExtractHeadings(markdown),
		Links:    ExtractLinks(html),
		Images:   ExtractImages(html, baseURL),
		MetaTags: ExtractMetaTags(html),
		Schema:   ExtractSchema(html),
		Hreflang: ExtractHreflang(html),
	}
	x.H1Count, x.H2Count, x.H3Count = CountHeadings(markdown)
	x.Canonical, _ = ExtractCanonical(html)
	return x
}
