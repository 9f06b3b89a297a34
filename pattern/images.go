package pattern

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/seoscan"
)

var imgRe = regexp.MustCompile(`(?i)<img\s[^>]*>`)

// ExtractImages returns every img tag carrying a src or data-src attribute.
// When a tag has both, whichever comes first in the tag is used.
// Sources are resolved against baseURL.
func ExtractImages(html, baseURL string) []seoscan.Image {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var images []seoscan.Image
	for _, tag := range imgRe.FindAllString(html, -1) {
		src, ok := imageSource(tag)
		if !ok {
			continue
		}

		alt, _, _ := attr(tag, "alt")
		width, _, _ := attr(tag, "width")
		height, _, _ := attr(tag, "height")
		srcset, _, _ := attr(tag, "srcset")

		images = append(images, seoscan.Image{
			Src:    resolve(base, src),
			Alt:    alt,
			HasAlt: alt != "",
			Width:  width,
			Height: height,
			Srcset: srcset,
		})
	}
	return images
}

// imageSource picks between src and data-src. A non-empty value beats an
// empty one; otherwise the attribute written first wins.
func imageSource(tag string) (string, bool) {
	src, srcPos, hasSrc := attr(tag, "src")
	dataSrc, dataPos, hasData := attr(tag, "data-src")
	switch {
	case hasSrc && hasData:
		srcEmpty := strings.TrimSpace(src) == ""
		dataEmpty := strings.TrimSpace(dataSrc) == ""
		if srcEmpty != dataEmpty {
			if srcEmpty {
				return dataSrc, true
			}
			return src, true
		}
		if dataPos < srcPos {
			return dataSrc, true
		}
		return src, true
	case hasSrc:
		return src, true
	case hasData:
		return dataSrc, true
	}
	return "", false
}

func resolve(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if base == nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}
