// Package htmltomarkdown renders fetched pages as Markdown so that headings
// can be counted from ATX heading lines.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/seoscan"
)

// Ensure Converter implements seoscan.Converter at compile time.
var _ seoscan.Converter = (*Converter)(nil)

// Converter converts full HTML pages to Markdown. Headings are always
// written in ATX style ("# Title"), never underlined.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
			),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert renders html as Markdown. Empty input is EINVALID.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", seoscan.Errorf(seoscan.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", seoscan.Errorf(seoscan.EINVALID, "convert HTML: %v", err)
	}
	return md, nil
}
