package mock

import "github.com/fwojciec/seoscan"

var _ seoscan.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of seoscan.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*seoscan.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*seoscan.Metadata, error) {
	return e.ExtractMetadataFn(html)
}
