package seoscan

import (
	"context"
	"net/url"
	"path"
	"strings"
)

// Metric names in the order they appear in a stored record.
const (
	MetricTimestamp         = "Timestamp"
	MetricURL               = "URL"
	MetricStatusCode        = "Status Code"
	MetricLoadTime          = "Load Time"
	MetricTitle             = "Title"
	MetricMetaDescription   = "Meta Description"
	MetricMetaKeywords      = "Meta Keywords"
	MetricCanonicalURL      = "Canonical URL"
	MetricSchemaMarkup      = "Schema Markup"
	MetricHreflangTags      = "Hreflang Tags"
	MetricRobotsMeta        = "Robots Meta"
	MetricViewportMeta      = "Viewport Meta"
	MetricOGTitle           = "OG Title"
	MetricOGDescription     = "OG Description"
	MetricOGImage           = "OG Image"
	MetricH1Headings        = "H1 Headings"
	MetricH2Headings        = "H2 Headings"
	MetricH3Headings        = "H3 Headings"
	MetricTotalLinks        = "Total Links"
	MetricInternalLinks     = "Internal Links"
	MetricExternalLinks     = "External Links"
	MetricNofollowLinks     = "Nofollow Links"
	MetricTotalImages       = "Total Images"
	MetricImagesMissingAlt  = "Images Missing Alt"
	MetricImagesWithDetails = "Images with Details"
)

// Metrics lists every metric name in record order.
var Metrics = []string{
	MetricTimestamp,
	MetricURL,
	MetricStatusCode,
	MetricLoadTime,
	MetricTitle,
	MetricMetaDescription,
	MetricMetaKeywords,
	MetricCanonicalURL,
	MetricSchemaMarkup,
	MetricHreflangTags,
	MetricRobotsMeta,
	MetricViewportMeta,
	MetricOGTitle,
	MetricOGDescription,
	MetricOGImage,
	MetricH1Headings,
	MetricH2Headings,
	MetricH3Headings,
	MetricTotalLinks,
	MetricInternalLinks,
	MetricExternalLinks,
	MetricNofollowLinks,
	MetricTotalImages,
	MetricImagesMissingAlt,
	MetricImagesWithDetails,
}

// Entry is one row of a page analysis.
// Detail is a free-form annotation for human readers; it is never aggregated.
type Entry struct {
	Metric string
	Value  string
	Detail string
}

// PageAnalysis is an ordered set of metric entries for a single page.
type PageAnalysis struct {
	URL string

	entries []Entry
	index   map[string]int
}

// NewPageAnalysis returns an empty analysis for the given page URL.
func NewPageAnalysis(pageURL string) *PageAnalysis {
	return &PageAnalysis{
		URL:   pageURL,
		index: make(map[string]int),
	}
}

// Set records a metric. Setting an existing metric replaces its value and
// detail but keeps its original position.
func (a *PageAnalysis) Set(metric, value, detail string) {
	e := Entry{Metric: metric, Value: value, Detail: detail}
	if i, ok := a.index[metric]; ok {
		a.entries[i] = e
		return
	}
	a.index[metric] = len(a.entries)
	a.entries = append(a.entries, e)
}

// Entries returns a copy of the entries in insertion order.
func (a *PageAnalysis) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Entry returns the entry for metric.
func (a *PageAnalysis) Entry(metric string) (Entry, bool) {
	i, ok := a.index[metric]
	if !ok {
		return Entry{}, false
	}
	return a.entries[i], true
}

// Len returns the number of metrics.
func (a *PageAnalysis) Len() int {
	return len(a.entries)
}

// Record is a page analysis loaded back from storage.
type Record struct {
	// Name is the derived identifier the record was stored under.
	Name    string
	Entries []Entry
}

// Value returns the value for metric, or false if the record never reported it.
// When a metric appears more than once the last occurrence wins.
func (r *Record) Value(metric string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, e := range r.Entries {
		if e.Metric == metric {
			value, found = e.Value, true
		}
	}
	return value, found
}

// RecordName derives the stable identifier a page's record is stored under.
// It is the last segment of the URL path, "index" when that segment is empty,
// with ".html" appended when the segment carries no extension.
// Example: https://example.com/blog/post → post.html
func RecordName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	name := u.Path
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = "index"
	}
	if path.Ext(name) == "" {
		name += ".html"
	}
	return name, nil
}

// RecordStore persists page analyses.
type RecordStore interface {
	// SaveRecord stores the analysis under the name derived from its URL,
	// replacing any existing record with that name. It returns the name.
	SaveRecord(ctx context.Context, a *PageAnalysis) (string, error)

	// FindRecords loads every stored record.
	// Returns ENOTFOUND if there are no records.
	FindRecords(ctx context.Context) ([]*Record, error)
}
