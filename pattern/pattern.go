// Package pattern extracts SEO signals from raw HTML and Markdown with
// regular expressions. It works on the unparsed text, so unclosed tags and
// unusual attribute order degrade the result instead of failing it.
package pattern

import (
	"regexp"
	"strings"
)

// attrRe matches one attribute of a tag. Scanning a tag with it from the
// left consumes quoted values whole, so text inside a value is never read
// as an attribute of its own.
var attrRe = regexp.MustCompile(`([^\s"'<>/=]+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+)))?`)

// attr returns the value of the named attribute within a single tag's text.
// It also returns the offset of the match, so callers can tell which of two
// attributes comes first. Names compare case-insensitively and the first
// occurrence wins.
func attr(tag, name string) (value string, pos int, ok bool) {
	body, offset := tag, 0
	if i := strings.IndexAny(tag, " \t\r\n/"); strings.HasPrefix(tag, "<") && i >= 0 {
		// Skip the element name.
		body, offset = tag[i:], i
	}
	for _, m := range attrRe.FindAllStringSubmatchIndex(body, -1) {
		if !strings.EqualFold(body[m[2]:m[3]], name) {
			continue
		}
		for g := 2; g <= 4; g++ {
			if m[2*g] >= 0 {
				return body[m[2*g]:m[2*g+1]], offset + m[0], true
			}
		}
		return "", offset + m[0], true
	}
	return "", -1, false
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// stripTags removes markup and collapses whitespace.
func stripTags(s string) string {
	return strings.Join(strings.Fields(tagRe.ReplaceAllString(s, "")), " ")
}
