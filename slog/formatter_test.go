package slog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fwojciec/jsformat"
	"github.com/fwojciec/jsformat/mock"
	jsslog "github.com/fwojciec/jsformat/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFormatter_Format(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes and options", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var gotOpts jsformat.FormatOptions
		inner := &mock.Formatter{
			FormatFn: func(source string, opts jsformat.FormatOptions) (string, error) {
				gotOpts = opts
				return "var a = 1;", nil
			},
		}

		formatter := jsslog.NewLoggingFormatter(inner, newDebugLogger(&buf))
		result, err := formatter.Format("var a=1;", jsformat.DefaultFormatOptions())

		require.NoError(t, err)
		assert.Equal(t, "var a = 1;", result)
		assert.Equal(t, jsformat.DefaultFormatOptions(), gotOpts)
		output := buf.String()
		assert.Contains(t, output, "msg=format")
		assert.Contains(t, output, "in_bytes=8")
		assert.Contains(t, output, "out_bytes=10")
		assert.Contains(t, output, "brace_style=collapse")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Formatter{
			FormatFn: func(source string, opts jsformat.FormatOptions) (string, error) {
				return "", errors.New("engine exploded")
			},
		}

		formatter := jsslog.NewLoggingFormatter(inner, newDebugLogger(&buf))
		_, err := formatter.Format("x", jsformat.DefaultFormatOptions())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"engine exploded\"")
	})
}
