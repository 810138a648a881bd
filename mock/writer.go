package mock

import "github.com/fwojciec/jsformat"

var _ jsformat.Writer = (*Writer)(nil)

// Writer is a mock implementation of jsformat.Writer.
type Writer struct {
	WriteFileFn func(path, text string) error
}

func (w *Writer) WriteFile(path, text string) error {
	return w.WriteFileFn(path, text)
}
