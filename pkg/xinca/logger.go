package xinca

import (
	"context"
	"log/slog"
)

// SlogLogger adapts an *slog.Logger to Logger.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger. A nil logger uses slog.Default().
func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogLogger{logger: logger}
}

// Debug logs msg at debug level with fields as attributes.
func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(slog.LevelDebug, msg, fields)
}

// Info logs msg at info level with fields as attributes.
func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, msg, fields)
}

// Warn logs msg at warn level with fields as attributes.
func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(slog.LevelWarn, msg, fields)
}

// Error logs msg at error level with fields as attributes.
func (l *SlogLogger) Error(msg string, fields map[string]interface{}) {
	l.log(slog.LevelError, msg, fields)
}

func (l *SlogLogger) log(level slog.Level, msg string, fields map[string]interface{}) {
	attrs := make([]slog.Attr, 0, len(fields))
	for key, value := range fields {
		attrs = append(attrs, slog.Any(key, value))
	}

	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}
