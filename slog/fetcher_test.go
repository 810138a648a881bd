package slog_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jsformat/mock"
	jsslog "github.com/fwojciec/jsformat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes, hash and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, location string) (string, error) {
				return "var a = 1;", nil
			},
		}

		fetcher := jsslog.NewLoggingFetcher(inner, newDebugLogger(&buf))
		content, err := fetcher.Fetch(context.Background(), "https://example.com/app.js")

		require.NoError(t, err)
		assert.Equal(t, "var a = 1;", content)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "location=https://example.com/app.js")
		assert.Contains(t, output, "bytes=10")
		assert.Contains(t, output, fmt.Sprintf("hash=%x", xxhash.Sum64String("var a = 1;")))
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, location string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := jsslog.NewLoggingFetcher(inner, newDebugLogger(&buf))
		_, err := fetcher.Fetch(context.Background(), "https://example.com/app.js")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"network error\"")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, location string) (string, error) {
				return "x", nil
			},
		}

		fetcher := jsslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "app.js")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
