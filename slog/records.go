package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/seoscan"
)

// Ensure LoggingRecordStore implements seoscan.RecordStore.
var _ seoscan.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with debug logging.
type LoggingRecordStore struct {
	next   seoscan.RecordStore
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore.
func NewLoggingRecordStore(next seoscan.RecordStore, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, logger: logger}
}

// SaveRecord delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) SaveRecord(ctx context.Context, a *seoscan.PageAnalysis) (name string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("save record",
			"url", a.URL,
			"name", name,
			"metrics", a.Len(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRecord(ctx, a)
}

// FindRecords delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) FindRecords(ctx context.Context) (records []*seoscan.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx)
}
