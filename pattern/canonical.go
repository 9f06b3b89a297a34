package pattern

import (
	"regexp"
	"strings"
)

var (
	canonicalRelFirstRe  = regexp.MustCompile(`(?i)<link[^>]*\srel\s*=\s*["']canonical["'][^>]*\shref\s*=\s*["']([^"']*)["']`)
	canonicalHrefFirstRe = regexp.MustCompile(`(?i)<link[^>]*\shref\s*=\s*["']([^"']*)["'][^>]*\srel\s*=\s*["']canonical["']`)

	headRe             = regexp.MustCompile(`(?is)<head(?:\s[^>]*)?>(.*?)</head>`)
	lenientCanonicalRe = regexp.MustCompile(`(?i)<link[^>]*?canonical[^>]*?>`)
)

// ExtractCanonical returns the page's canonical URL.
//
// A strict match on rel="canonical" is tried with rel before href, then with
// href before rel. Failing both, the first <link> inside <head> whose text
// contains "canonical" anywhere is used. That last pass can pick a tag that
// only mentions the word in another attribute, such as a class name.
func ExtractCanonical(html string) (string, bool) {
	for _, re := range []*regexp.Regexp{canonicalRelFirstRe, canonicalHrefFirstRe} {
		if m := re.FindStringSubmatch(html); m != nil {
			return strings.TrimSpace(m[1]), true
		}
	}

	head := headRe.FindStringSubmatch(html)
	if head == nil {
		return "", false
	}
	tag := lenientCanonicalRe.FindString(head[1])
	if tag == "" {
		return "", false
	}
	href, _, ok := attr(tag, "href")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(href), true
}
