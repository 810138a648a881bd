package fs

import (
	"os"

	"github.com/fwojciec/jsformat"
)

// Ensure Writer implements jsformat.Writer at compile time.
var _ jsformat.Writer = (*Writer)(nil)

// Writer writes formatted text to files, replacing existing content.
// Parent directories are not created.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteFile truncates or creates the file at path and writes text to it.
func (w *Writer) WriteFile(path, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}
