package mock

import "github.com/fwojciec/cwsummary"

var _ cwsummary.Converter = (*Converter)(nil)

// Converter is a mock implementation of cwsummary.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
