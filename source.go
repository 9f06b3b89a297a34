package seoscan

import "context"

// URLSource produces the list of page URLs for a batch run.
// Implementations return URLs in source order.
type URLSource interface {
	Discover(ctx context.Context, source string) ([]string, error)
}
