package pattern

import (
	"regexp"

	"github.com/fwojciec/seoscan"
)

// hreflangRe only recognizes the attribute order rel, hreflang, href.
// Alternates written in any other order are not reported.
var hreflangRe = regexp.MustCompile(`(?i)<link[^>]*\srel\s*=\s*["']alternate["'][^>]*\shreflang\s*=\s*["']([^"']*)["'][^>]*\shref\s*=\s*["']([^"']*)["']`)

// ExtractHreflang returns the language alternates declared with link tags.
func ExtractHreflang(html string) []seoscan.HreflangEntry {
	var entries []seoscan.HreflangEntry
	for _, m := range hreflangRe.FindAllStringSubmatch(html, -1) {
		entries = append(entries, seoscan.HreflangEntry{Language: m[1], URL: m[2]})
	}
	return entries
}
