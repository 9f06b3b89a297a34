package mock

import "github.com/fwojciec/seoscan"

var _ seoscan.Converter = (*Converter)(nil)

// Converter is a mock implementation of seoscan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
