package seoscan

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// SummaryRow is the projection of one record onto the summary sheet.
//
// Fields missing from the record take their zero value: counts are 0 and
// text fields are empty. TitleLength and MetaDescriptionLength are computed
// from the record and never stored in it.
type SummaryRow struct {
	Name                  string
	URL                   string
	Title                 string
	TitleLength           int
	MetaDescriptionLength int
	CanonicalURL          string
	H1Count               int
	H2Count               int
	H3Count               int
	TotalLinks            int
	InternalLinks         int
	ExternalLinks         int
	NofollowLinks         int
	TotalImages           int
	ImagesMissingAlt      int
	SchemaMarkupCount     int
	HreflangCount         int
	StatusCode            string
	LoadTime              string
	RobotsMeta            string
	OGTitle               string
	OGDescription         string
	OGImage               string
}

// SummaryColumns are the summary sheet headers, in the order of SummaryRow.Values.
var SummaryColumns = []string{
	"URL Name",
	"URL",
	"Title",
	"Title Length",
	"Meta Description Length",
	"Canonical URL",
	"H1 Count",
	"H2 Count",
	"H3 Count",
	"Total Links",
	"Internal Links",
	"External Links",
	"Nofollow Links",
	"Total Images",
	"Images Missing Alt",
	"Schema Markup Count",
	"Hreflang Count",
	"Status Code",
	"Load Time",
	"Robots Meta",
	"OG Title",
	"OG Description",
	"OG Image",
}

// NewSummaryRow builds the summary row for a record.
func NewSummaryRow(r *Record) SummaryRow {
	text := func(metric string) string {
		v, _ := r.Value(metric)
		return v
	}
	count := func(metric string) int {
		v, ok := r.Value(metric)
		if !ok {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}

	return SummaryRow{
		Name:                  r.Name,
		URL:                   text(MetricURL),
		Title:                 text(MetricTitle),
		TitleLength:           utf8.RuneCountInString(text(MetricTitle)),
		MetaDescriptionLength: utf8.RuneCountInString(text(MetricMetaDescription)),
		CanonicalURL:          text(MetricCanonicalURL),
		H1Count:               count(MetricH1Headings),
		H2Count:               count(MetricH2Headings),
		H3Count:               count(MetricH3Headings),
		TotalLinks:            count(MetricTotalLinks),
		InternalLinks:         count(MetricInternalLinks),
		ExternalLinks:         count(MetricExternalLinks),
		NofollowLinks:         count(MetricNofollowLinks),
		TotalImages:           count(MetricTotalImages),
		ImagesMissingAlt:      count(MetricImagesMissingAlt),
		SchemaMarkupCount:     count(MetricSchemaMarkup),
		HreflangCount:         count(MetricHreflangTags),
		StatusCode:            text(MetricStatusCode),
		LoadTime:              text(MetricLoadTime),
		RobotsMeta:            text(MetricRobotsMeta),
		OGTitle:               text(MetricOGTitle),
		OGDescription:         text(MetricOGDescription),
		OGImage:               text(MetricOGImage),
	}
}

// Values returns the row cells in SummaryColumns order.
func (s SummaryRow) Values() []any {
	return []any{
		s.Name,
		s.URL,
		s.Title,
		s.TitleLength,
		s.MetaDescriptionLength,
		s.CanonicalURL,
		s.H1Count,
		s.H2Count,
		s.H3Count,
		s.TotalLinks,
		s.InternalLinks,
		s.ExternalLinks,
		s.NofollowLinks,
		s.TotalImages,
		s.ImagesMissingAlt,
		s.SchemaMarkupCount,
		s.HreflangCount,
		s.StatusCode,
		s.LoadTime,
		s.RobotsMeta,
		s.OGTitle,
		s.OGDescription,
		s.OGImage,
	}
}

// Comparison lays records side by side: one row per metric, one column per page.
type Comparison struct {
	Pages []string
	Rows  []ComparisonRow
}

// ComparisonRow holds one metric's value for every page, in Pages order.
// Pages that never reported the metric have an empty value.
type ComparisonRow struct {
	Metric string
	Values []string
}

// Compare builds a comparison over the union of metric names of all records,
// sorted lexicographically.
func Compare(records []*Record) *Comparison {
	seen := make(map[string]struct{})
	var metrics []string
	for _, r := range records {
		for _, e := range r.Entries {
			if _, ok := seen[e.Metric]; ok {
				continue
			}
			seen[e.Metric] = struct{}{}
			metrics = append(metrics, e.Metric)
		}
	}
	sort.Strings(metrics)

	c := &Comparison{
		Pages: make([]string, len(records)),
		Rows:  make([]ComparisonRow, len(metrics)),
	}
	for i, r := range records {
		c.Pages[i] = r.Name
	}
	for i, m := range metrics {
		row := ComparisonRow{Metric: m, Values: make([]string, len(records))}
		for j, r := range records {
			row.Values[j], _ = r.Value(m)
		}
		c.Rows[i] = row
	}
	return c
}

// Report is the compiled view over all stored records.
type Report struct {
	CompiledAt time.Time
	Summary    []SummaryRow
	Comparison *Comparison
	Records    []*Record
}

// NewReport compiles records into a report.
func NewReport(records []*Record, compiledAt time.Time) *Report {
	summary := make([]SummaryRow, len(records))
	for i, r := range records {
		summary[i] = NewSummaryRow(r)
	}
	return &Report{
		CompiledAt: compiledAt,
		Summary:    summary,
		Comparison: Compare(records),
		Records:    records,
	}
}

// ReportWriter writes a compiled report to its destination.
type ReportWriter interface {
	// WriteReport writes the report and returns the location of the artifact.
	WriteReport(ctx context.Context, r *Report) (string, error)
}
