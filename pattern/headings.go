package pattern

import (
	"regexp"
	"strings"

	"github.com/fwojciec/seoscan"
)

var (
	h1CountRe = regexp.MustCompile(`(?m)^# [^#]`)
	h2CountRe = regexp.MustCompile(`(?m)^## [^#]`)
	h3CountRe = regexp.MustCompile(`(?m)^### [^#]`)

	h1Re = regexp.MustCompile(`(?m)^# ([^\n]+)`)
	h2Re = regexp.MustCompile(`(?m)^## ([^\n]+)`)
	h3Re = regexp.MustCompile(`(?m)^### ([^\n]+)`)
)

// CountHeadings counts Markdown lines that start with exactly one, two or
// three '#' markers followed by a space and a non-'#' character.
func CountHeadings(markdown string) (h1, h2, h3 int) {
	return len(h1CountRe.FindAllStringIndex(markdown, -1)),
		len(h2CountRe.FindAllStringIndex(markdown, -1)),
		len(h3CountRe.FindAllStringIndex(markdown, -1))
}

// ExtractHeadings collects the text of every H1, H2 and H3 Markdown line.
func ExtractHeadings(markdown string) seoscan.Headings {
	return seoscan.Headings{
		H1: headingText(h1Re, markdown),
		H2: headingText(h2Re, markdown),
		H3: headingText(h3Re, markdown),
	}
}

func headingText(re *regexp.Regexp, markdown string) []string {
	matches := re.FindAllStringSubmatch(markdown, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, strings.TrimSuffix(m[1], "\r"))
	}
	return out
}

// JoinHeadings joins same-level headings the way they are reported.
func JoinHeadings(headings []string) string {
	return strings.Join(headings, "; ")
}
