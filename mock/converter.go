package mock

import "github.com/fwojciec/blogsmith"

var _ blogsmith.Converter = (*Converter)(nil)

// Converter stands in for the HTML to Markdown step used by metadata
// generation. Tests set ConvertFn to script the conversion or assert that
// it is never reached.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
