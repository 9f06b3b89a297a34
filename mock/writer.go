package mock

import (
	"context"

	"github.com/fwojciec/seoscan"
)

var _ seoscan.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of seoscan.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, r *seoscan.Report) (string, error)
}

func (w *ReportWriter) WriteReport(ctx context.Context, r *seoscan.Report) (string, error) {
	return w.WriteReportFn(ctx, r)
}
