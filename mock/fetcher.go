package mock

import (
	"context"

	"github.com/fwojciec/jsformat"
)

var _ jsformat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of jsformat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, location string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	return f.FetchFn(ctx, location)
}
