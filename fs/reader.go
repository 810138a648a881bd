// Package fs provides filesystem access for reading source files
// and writing formatted output.
package fs

import (
	"context"
	"os"

	"github.com/fwojciec/jsformat"
)

// Ensure Reader implements jsformat.Fetcher at compile time.
var _ jsformat.Fetcher = (*Reader)(nil)

// Reader reads source text from local files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Fetch reads the whole file at path. Missing files, permission problems
// and directories are reported with the error from the operating system.
func (r *Reader) Fetch(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
