package mock

import (
	"context"

	"github.com/fwojciec/seoscan"
)

// Compile-time interface verification.
var (
	_ seoscan.URLSource   = (*URLSource)(nil)
	_ seoscan.RecordStore = (*RecordStore)(nil)
)

// URLSource is a mock implementation of seoscan.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, source string) ([]string, error)
}

func (s *URLSource) Discover(ctx context.Context, source string) ([]string, error) {
	return s.DiscoverFn(ctx, source)
}

// RecordStore is a mock implementation of seoscan.RecordStore.
type RecordStore struct {
	SaveRecordFn  func(ctx context.Context, a *seoscan.PageAnalysis) (string, error)
	FindRecordsFn func(ctx context.Context) ([]*seoscan.Record, error)
}

func (s *RecordStore) SaveRecord(ctx context.Context, a *seoscan.PageAnalysis) (string, error) {
	return s.SaveRecordFn(ctx, a)
}

func (s *RecordStore) FindRecords(ctx context.Context) ([]*seoscan.Record, error) {
	return s.FindRecordsFn(ctx)
}
