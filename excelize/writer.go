// Package excelize writes compiled reports as xlsx workbooks.
package excelize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/seoscan"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the aggregate sheets.
const (
	SummarySheet    = "Summary"
	ComparisonSheet = "Comparison"
)

// FileNameLayout is the time layout of the report file name.
const FileNameLayout = "20060102_150405"

const (
	maxSheetNameLen = 31
	maxColumnWidth  = 50
)

// Ensure ReportWriter implements seoscan.ReportWriter at compile time.
var _ seoscan.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes reports to seo_analysis_summary_<timestamp>.xlsx in a directory.
// The workbook holds a Summary sheet, a Comparison sheet and one sheet per record.
type ReportWriter struct {
	dir string
}

// NewReportWriter creates a ReportWriter that writes into dir.
func NewReportWriter(dir string) *ReportWriter {
	return &ReportWriter{dir: dir}
}

// FileName returns the name of the report file compiled at the report's time.
func FileName(r *seoscan.Report) string {
	return "seo_analysis_summary_" + r.CompiledAt.Format(FileNameLayout) + ".xlsx"
}

func (w *ReportWriter) WriteReport(ctx context.Context, r *seoscan.Report) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	b, err := newBook(f)
	if err != nil {
		return "", err
	}

	if err := f.SetSheetName(f.GetSheetName(0), SummarySheet); err != nil {
		return "", err
	}
	b.used[strings.ToLower(SummarySheet)] = true
	if err := b.writeSheet(SummarySheet, summaryHeader(), summaryRows(r.Summary)); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	if err := b.addSheet(ComparisonSheet); err != nil {
		return "", err
	}
	header, rows := comparisonRows(r.Comparison)
	if err := b.writeSheet(ComparisonSheet, header, rows); err != nil {
		return "", fmt.Errorf("write comparison: %w", err)
	}

	for _, rec := range r.Records {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		name := b.uniqueName(SheetName(rec.Name))
		if err := b.addSheet(name); err != nil {
			return "", err
		}
		if err := b.writeSheet(name, recordColumns, recordRows(rec)); err != nil {
			return "", fmt.Errorf("write record %s: %w", rec.Name, err)
		}
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(w.dir, FileName(r))
	if err := f.SaveAs(path); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

var recordColumns = []any{"Metric", "Value", "Details"}

// summaryHeader returns the summary header row.
func summaryHeader() []any {
	header := make([]any, len(seoscan.SummaryColumns))
	for i, c := range seoscan.SummaryColumns {
		header[i] = c
	}
	return header
}

func summaryRows(summary []seoscan.SummaryRow) [][]any {
	rows := make([][]any, len(summary))
	for i, s := range summary {
		rows[i] = s.Values()
	}
	return rows
}

func comparisonRows(c *seoscan.Comparison) ([]any, [][]any) {
	header := []any{"Metric"}
	if c == nil {
		return header, nil
	}
	for _, p := range c.Pages {
		header = append(header, p)
	}
	rows := make([][]any, len(c.Rows))
	for i, cr := range c.Rows {
		row := make([]any, 0, len(cr.Values)+1)
		row = append(row, cr.Metric)
		for _, v := range cr.Values {
			row = append(row, v)
		}
		rows[i] = row
	}
	return header, rows
}

func recordRows(r *seoscan.Record) [][]any {
	rows := make([][]any, len(r.Entries))
	for i, e := range r.Entries {
		rows[i] = []any{e.Metric, e.Value, e.Detail}
	}
	return rows
}

// book tracks sheet names and shared styles of a workbook being written.
type book struct {
	f           *excelize.File
	headerStyle int
	used        map[string]bool // lowercased; sheet names are case-insensitive
}

func newBook(f *excelize.File) (*book, error) {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	return &book{f: f, headerStyle: style, used: make(map[string]bool)}, nil
}

func (b *book) addSheet(name string) error {
	if _, err := b.f.NewSheet(name); err != nil {
		return fmt.Errorf("add sheet %q: %w", name, err)
	}
	b.used[strings.ToLower(name)] = true
	return nil
}

// uniqueName returns name, or name with the smallest numeric suffix that is
// not taken yet, keeping the result within the sheet name limit.
func (b *book) uniqueName(name string) string {
	if !b.used[strings.ToLower(name)] {
		return name
	}
	for i := 2; ; i++ {
		suffix := "_" + strconv.Itoa(i)
		candidate := truncate(name, maxSheetNameLen-len(suffix)) + suffix
		if !b.used[strings.ToLower(candidate)] {
			return candidate
		}
	}
}

// writeSheet writes a bold header row followed by rows and sizes every
// column to its longest cell.
func (b *book) writeSheet(sheet string, header []any, rows [][]any) error {
	widths := make([]int, len(header))
	measure := func(row []any) {
		for i, v := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	if err := b.f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	measure(header)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := b.f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		measure(row)
	}

	if len(header) > 0 {
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return err
		}
		if err := b.f.SetCellStyle(sheet, "A1", last, b.headerStyle); err != nil {
			return err
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := b.f.SetColWidth(sheet, col, col, float64(ColumnWidth(w))); err != nil {
			return err
		}
	}
	return nil
}

// ColumnWidth returns the width of a column whose longest cell has n characters.
func ColumnWidth(n int) int {
	return min(n+2, maxColumnWidth)
}

// SheetName turns a record name into a valid sheet name: characters that are
// not allowed in sheet names become "_" and the result is cut to 31 characters.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', '*', '?', ':', '[', ']':
			return '_'
		}
		return r
	}, name)
	name = truncate(name, maxSheetNameLen)
	name = strings.Trim(name, "'")
	if name == "" {
		return "Sheet"
	}
	return name
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
