package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jsformat"
)

// Ensure LoggingWriter implements jsformat.Writer.
var _ jsformat.Writer = (*LoggingWriter)(nil)

// LoggingWriter wraps a Writer with debug logging.
type LoggingWriter struct {
	next   jsformat.Writer
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next jsformat.Writer, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteFile delegates to the wrapped writer and logs the operation.
func (w *LoggingWriter) WriteFile(path, text string) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write",
			"path", path,
			"bytes", len(text),
			"hash", contentHash(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteFile(path, text)
}
