package pattern

import (
	"regexp"

	"github.com/fwojciec/seoscan"
)

var metaRe = regexp.MustCompile(`(?i)<meta\s[^>]*>`)

// ExtractMetaTags returns meta tags that have both a name and a content
// attribute. Tags keyed by property (most Open Graph tags) are not included.
func ExtractMetaTags(html string) []seoscan.MetaTag {
	var tags []seoscan.MetaTag
	for _, tag := range metaRe.FindAllString(html, -1) {
		name, _, ok := attr(tag, "name")
		if !ok {
			continue
		}
		content, _, ok := attr(tag, "content")
		if !ok {
			continue
		}
		tags = append(tags, seoscan.MetaTag{Name: name, Content: content})
	}
	return tags
}
