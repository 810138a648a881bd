package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jsformat"
)

// Ensure LoggingFormatter implements jsformat.Formatter.
var _ jsformat.Formatter = (*LoggingFormatter)(nil)

// LoggingFormatter wraps a Formatter with debug logging.
type LoggingFormatter struct {
	next   jsformat.Formatter
	logger *slog.Logger
}

// NewLoggingFormatter creates a new LoggingFormatter.
func NewLoggingFormatter(next jsformat.Formatter, logger *slog.Logger) *LoggingFormatter {
	return &LoggingFormatter{next: next, logger: logger}
}

// Format delegates to the wrapped formatter and logs input and output sizes.
func (f *LoggingFormatter) Format(source string, opts jsformat.FormatOptions) (result string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("format",
			"in_bytes", len(source),
			"out_bytes", len(result),
			"indent_size", opts.IndentSize,
			"brace_style", string(opts.BraceStyle),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Format(source, opts)
}
