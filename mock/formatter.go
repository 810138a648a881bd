package mock

import "github.com/fwojciec/jsformat"

var _ jsformat.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of jsformat.Formatter.
type Formatter struct {
	FormatFn func(source string, opts jsformat.FormatOptions) (string, error)
}

func (f *Formatter) Format(source string, opts jsformat.FormatOptions) (string, error) {
	return f.FormatFn(source, opts)
}
