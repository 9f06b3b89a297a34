package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seoscan"
)

// Ensure LoggingURLSource implements seoscan.URLSource.
var _ seoscan.URLSource = (*LoggingURLSource)(nil)

// LoggingURLSource wraps a URLSource with logging.
type LoggingURLSource struct {
	next   seoscan.URLSource
	logger *slog.Logger
}

// NewLoggingURLSource creates a new LoggingURLSource.
func NewLoggingURLSource(next seoscan.URLSource, logger *slog.Logger) *LoggingURLSource {
	return &LoggingURLSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the operation.
func (s *LoggingURLSource) Discover(ctx context.Context, source string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("url discovery",
			"source", source,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, source)
}
