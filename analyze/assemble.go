// Package analyze turns scraped pages into page analyses and runs batches
// of them one URL at a time.
package analyze

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/seoscan"
	"github.com/fwojciec/seoscan/pattern"
)

// TimestampLayout is the layout of the Timestamp metric.
const TimestampLayout = "2006-01-02 15:04:05"

const notFound = "Not found"

// Assemble builds the analysis of a scraped page.
// It is a pure function of its inputs; now is recorded as the Timestamp.
func Assemble(pageURL string, res *seoscan.ScrapeResult, now time.Time) *seoscan.PageAnalysis {
	return assemble(pageURL, res, pattern.Extract(res.RawHTML, res.Markdown, pageURL), now)
}

func assemble(pageURL string, res *seoscan.ScrapeResult, x *seoscan.Extraction, now time.Time) *seoscan.PageAnalysis {
	md := res.Metadata

	canonical := md.Canonical
	if canonical == "" {
		canonical = x.Canonical
	}
	if canonical == "" {
		canonical = notFound
	}

	statusCode := md.StatusCode
	if statusCode == 0 {
		statusCode = res.StatusCode
	}

	var internal, external, nofollow []string
	for _, l := range x.Links {
		if l.IsInternal(pageURL) {
			internal = append(internal, l.URL)
		} else {
			external = append(external, l.URL)
		}
		if l.IsNofollow() {
			nofollow = append(nofollow, l.URL)
		}
	}

	var missingAlt, imageDetails []string
	for _, img := range x.Images {
		if !img.HasAlt {
			missingAlt = append(missingAlt, img.Src)
		}
		imageDetails = append(imageDetails, formatImage(img))
	}

	a := seoscan.NewPageAnalysis(pageURL)
	a.Set(seoscan.MetricTimestamp, now.Format(TimestampLayout), "")
	a.Set(seoscan.MetricURL, pageURL, "")
	a.Set(seoscan.MetricStatusCode, strconv.Itoa(statusCode), "")
	a.Set(seoscan.MetricLoadTime, fmt.Sprintf("%.2f seconds", res.Elapsed.Seconds()), "")
	a.Set(seoscan.MetricTitle, md.Title, lengthDetail(md.Title))
	a.Set(seoscan.MetricMetaDescription, md.Description, lengthDetail(md.Description))
	a.Set(seoscan.MetricMetaKeywords, md.Keywords, "Comma-separated list of keywords")
	a.Set(seoscan.MetricCanonicalURL, canonical, "Specified canonical URL")
	a.Set(seoscan.MetricSchemaMarkup, strconv.Itoa(len(x.Schema)), schemaDetail(x.Schema))
	a.Set(seoscan.MetricHreflangTags, strconv.Itoa(len(x.Hreflang)), hreflangDetail(x.Hreflang))
	a.Set(seoscan.MetricRobotsMeta, orNotFound(md.Robots), "Robots meta tag content")
	a.Set(seoscan.MetricViewportMeta, orNotFound(md.Viewport), "Viewport meta tag content")
	a.Set(seoscan.MetricOGTitle, md.OGTitle, "Open Graph title")
	a.Set(seoscan.MetricOGDescription, md.OGDescription, "Open Graph description")
	a.Set(seoscan.MetricOGImage, md.OGImage, "Open Graph image URL")
	a.Set(seoscan.MetricH1Headings, strconv.Itoa(x.H1Count), pattern.JoinHeadings(x.Headings.H1))
	a.Set(seoscan.MetricH2Headings, strconv.Itoa(x.H2Count), pattern.JoinHeadings(x.Headings.H2))
	a.Set(seoscan.MetricH3Headings, strconv.Itoa(x.H3Count), pattern.JoinHeadings(x.Headings.H3))
	a.Set(seoscan.MetricTotalLinks, strconv.Itoa(len(x.Links)), "Total number of links found")
	a.Set(seoscan.MetricInternalLinks, strconv.Itoa(len(internal)), strings.Join(internal, "; "))
	a.Set(seoscan.MetricExternalLinks, strconv.Itoa(len(external)), strings.Join(external, "; "))
	a.Set(seoscan.MetricNofollowLinks, strconv.Itoa(len(nofollow)), strings.Join(nofollow, "; "))
	a.Set(seoscan.MetricTotalImages, strconv.Itoa(len(x.Images)), "Total number of images found")
	a.Set(seoscan.MetricImagesMissingAlt, strconv.Itoa(len(missingAlt)), strings.Join(missingAlt, "; "))
	a.Set(seoscan.MetricImagesWithDetails, strconv.Itoa(len(x.Images)), strings.Join(imageDetails, "\n"))
	return a
}

func lengthDetail(s string) string {
	return fmt.Sprintf("Length: %d chars", utf8.RuneCountInString(s))
}

func orNotFound(s string) string {
	if s == "" {
		return notFound
	}
	return s
}

func schemaDetail(blocks []seoscan.SchemaBlock) string {
	if len(blocks) == 0 {
		return "None found"
	}
	types := make([]string, len(blocks))
	for i, b := range blocks {
		types[i] = b.Type()
	}
	return "Types: " + strings.Join(types, ", ")
}

func hreflangDetail(entries []seoscan.HreflangEntry) string {
	if len(entries) == 0 {
		return "None found"
	}
	parts := make([]string, len(entries))
	for i, h := range entries {
		parts[i] = h.Language + ": " + h.URL
	}
	return strings.Join(parts, "; ")
}

// formatImage renders one line of the Images with Details metric:
// src, then (WxH) when both are known, the alt text, and a srcset marker.
func formatImage(img seoscan.Image) string {
	var b strings.Builder
	b.WriteString(img.Src)
	if img.Width != "" && img.Height != "" {
		fmt.Fprintf(&b, " (%sx%s)", img.Width, img.Height)
	}
	if img.Alt != "" {
		fmt.Fprintf(&b, " [alt: %s]", img.Alt)
	}
	if img.Srcset != "" {
		b.WriteString(" [srcset available]")
	}
	return b.String()
}
