// Package fs provides file-based storage for page records and batch inputs.
package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/seoscan"
)

// Ensure RecordStore implements seoscan.RecordStore at compile time.
var _ seoscan.RecordStore = (*RecordStore)(nil)

// recordHeader is the first row of every record file.
var recordHeader = []string{"Metric", "Value", "Details"}

var recordFileRe = regexp.MustCompile(`^seo_results_(.+)\.csv$`)

// RecordStore keeps one CSV file per page in a results directory.
// Each file is written to a temporary file first and renamed into place,
// so a record is either complete or absent.
type RecordStore struct {
	dir string
}

// NewRecordStore creates a RecordStore rooted at dir.
// The directory is created on the first save.
func NewRecordStore(dir string) *RecordStore {
	return &RecordStore{dir: dir}
}

// Dir returns the results directory.
func (s *RecordStore) Dir() string {
	return s.dir
}

// RecordPath returns the file a record with the given name is stored in.
func (s *RecordStore) RecordPath(name string) string {
	return filepath.Join(s.dir, "seo_results_"+name+".csv")
}

func (s *RecordStore) SaveRecord(ctx context.Context, a *seoscan.PageAnalysis) (string, error) {
	name, err := seoscan.RecordName(a.URL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".seo_results_*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	// Remove is a no-op once the rename succeeded.
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := writeRecord(tmp, a.Entries()); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write record %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write record %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), s.RecordPath(name)); err != nil {
		return "", fmt.Errorf("write record %s: %w", name, err)
	}
	return name, nil
}

func writeRecord(w io.Writer, entries []seoscan.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordHeader); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Metric, e.Value, e.Detail}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *RecordStore) FindRecords(ctx context.Context) ([]*seoscan.Record, error) {
	files, err := filepath.Glob(filepath.Join(s.dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, seoscan.Errorf(seoscan.ENOTFOUND, "no records found in %s", s.dir)
	}

	records := make([]*seoscan.Record, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entries, err := readRecord(file)
		if err != nil {
			return nil, fmt.Errorf("read record %s: %w", filepath.Base(file), err)
		}
		records = append(records, &seoscan.Record{
			Name:    nameFromFile(filepath.Base(file)),
			Entries: entries,
		})
	}
	return records, nil
}

// nameFromFile recovers the record name from a file name. Files that do not
// follow the seo_results_<name>.csv convention are named after the file.
func nameFromFile(base string) string {
	if m := recordFileRe.FindStringSubmatch(base); m != nil {
		return m[1]
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func readRecord(path string) ([]seoscan.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var entries []seoscan.Entry
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) == 0 || (len(row) == 1 && row[0] == "") {
			continue
		}
		e := seoscan.Entry{Metric: row[0]}
		if len(row) > 1 {
			e.Value = row[1]
		}
		if len(row) > 2 {
			e.Detail = row[2]
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func isHeader(row []string) bool {
	return len(row) > 0 && strings.EqualFold(strings.TrimPrefix(row[0], "\ufeff"), recordHeader[0])
}
