package pattern

import (
	"regexp"
	"strings"

	"github.com/fwojciec/seoscan"
)

var (
	anchorRe      = regexp.MustCompile(`(?i)<a\s[^>]*>`)
	anchorCloseRe = regexp.MustCompile(`(?i)</a\s*>`)
)

// skippedLinkPrefixes are targets that never lead to another document.
var skippedLinkPrefixes = []string{"#", "javascript:", "mailto:"}

// ExtractLinks returns every anchor with an href, in document order.
// Fragment-only, javascript: and mailto: targets are skipped.
func ExtractLinks(html string) []seoscan.Link {
	var links []seoscan.Link
	for _, loc := range anchorRe.FindAllStringIndex(html, -1) {
		tag := html[loc[0]:loc[1]]

		href, _, ok := attr(tag, "href")
		href = strings.TrimSpace(href)
		if !ok || href == "" || isSkippedLink(href) {
			continue
		}

		rel, _, _ := attr(tag, "rel")

		links = append(links, seoscan.Link{
			URL:  href,
			Rel:  rel,
			Text: anchorText(html[loc[1]:]),
		})
	}
	return links
}

// anchorText returns the visible text up to the closing tag.
// An anchor that is never closed has no text.
func anchorText(rest string) string {
	end := anchorCloseRe.FindStringIndex(rest)
	if end == nil {
		return ""
	}
	return stripTags(rest[:end[0]])
}

func isSkippedLink(href string) bool {
	href = strings.ToLower(href)
	for _, p := range skippedLinkPrefixes {
		if strings.HasPrefix(href, p) {
			return true
		}
	}
	return false
}
