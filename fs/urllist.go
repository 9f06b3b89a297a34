package fs

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/seoscan"
)

// Ensure URLList implements seoscan.URLSource at compile time.
var _ seoscan.URLSource = (*URLList)(nil)

// URLList reads batch input files: a CSV with a header row that names a
// "url" column. Other columns are ignored.
type URLList struct{}

// Discover returns the URLs listed in the CSV file at path, in file order.
// Blank cells are skipped.
func (URLList) Discover(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, seoscan.Errorf(seoscan.ENOTFOUND, "batch file not found: %s", path)
		}
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	return ReadURLs(f)
}

// ReadURLs reads the url column of a CSV stream.
func ReadURLs(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errNoURLColumn
	}
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	col := -1
	for i, name := range header {
		if strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")) == "url" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, errNoURLColumn
	}

	var urls []string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read batch file: %w", err)
		}
		if col >= len(row) {
			continue
		}
		if u := strings.TrimSpace(row[col]); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// errNoURLColumn is returned by URLList when the header lacks a url column.
var errNoURLColumn = seoscan.Errorf(seoscan.EINVALID, "CSV file must contain a 'url' column")

// IsMissingURLColumn reports whether err is the missing url column error.
func IsMissingURLColumn(err error) bool {
	return errors.Is(err, errNoURLColumn)
}
