package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seoscan"
)

// Ensure LoggingReportWriter implements seoscan.ReportWriter.
var _ seoscan.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with logging.
type LoggingReportWriter struct {
	next   seoscan.ReportWriter
	logger *slog.Logger
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
func NewLoggingReportWriter(next seoscan.ReportWriter, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger}
}

// WriteReport delegates to the wrapped writer and logs the operation.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, r *seoscan.Report) (path string, err error) {
	defer func(begin time.Time) {
		var metrics int
		if r.Comparison != nil {
			metrics = len(r.Comparison.Rows)
		}
		w.logger.Info("write report",
			"records", len(r.Records),
			"metrics", metrics,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, r)
}
