// Package compile aggregates stored page records into a report artifact.
package compile

import (
	"context"
	"time"

	"github.com/fwojciec/seoscan"
)

// Compiler loads every stored record and writes the compiled report.
type Compiler struct {
	Records seoscan.RecordStore
	Reports seoscan.ReportWriter

	// Now returns the compile time. Defaults to time.Now.
	Now func() time.Time
}

// Result describes a written report.
type Result struct {
	Path    string
	Records int
}

// Compile builds the report from all stored records.
// It returns ENOTFOUND without writing anything when there are no records.
func (c *Compiler) Compile(ctx context.Context) (*Result, error) {
	records, err := c.Records.FindRecords(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, seoscan.Errorf(seoscan.ENOTFOUND, "no records to compile")
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	path, err := c.Reports.WriteReport(ctx, seoscan.NewReport(records, now()))
	if err != nil {
		return nil, err
	}
	return &Result{Path: path, Records: len(records)}, nil
}
